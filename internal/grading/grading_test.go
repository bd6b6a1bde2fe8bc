package grading

import (
	"testing"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

var mcqItem = catalog.Item{
	ID:                      "i1",
	ConceptID:               "light_reactions",
	Type:                    catalog.TypeMCQ,
	Stem:                    "Where do the light reactions take place?",
	Choices:                 []string{"Stroma", "Thylakoid membranes", "Outer membrane", "Cytoplasm"},
	AnswerIndex:             1,
	MisconceptionKeyIndexes: []int{0},
	MisconceptionTag:        "misconception:stroma",
}

func TestGrade_MCQ_Correct(t *testing.T) {
	res := Grade(mcqItem, ChoiceResponse(1))
	if !res.Correct {
		t.Fatal("expected correct")
	}
	if res.Reason != ReasonExactMatch {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonExactMatch)
	}
	if res.MisconceptionTag != "" {
		t.Errorf("unexpected tag %q", res.MisconceptionTag)
	}
}

func TestGrade_MCQ_WrongWithMisconception(t *testing.T) {
	res := Grade(mcqItem, ChoiceResponse(0))
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.Reason != ReasonMismatch {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonMismatch)
	}
	if res.MisconceptionTag != "misconception:stroma" {
		t.Errorf("MisconceptionTag = %q, want misconception:stroma", res.MisconceptionTag)
	}
}

func TestGrade_MCQ_WrongWithoutMisconception(t *testing.T) {
	res := Grade(mcqItem, ChoiceResponse(3))
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.MisconceptionTag != "" {
		t.Errorf("unexpected tag %q", res.MisconceptionTag)
	}
}

func TestGrade_Short_NormalizesWhitespaceAndCase(t *testing.T) {
	item := catalog.Item{Type: catalog.TypeShort, Answer: "Chlorophyll"}

	cases := []struct {
		response string
		correct  bool
	}{
		{"chlorophyll", true},
		{"  CHLOROPHYLL  ", true},
		{"Chlorophyll", true},
		{"chloroplast", false},
		{"", false},
	}
	for _, tc := range cases {
		res := Grade(item, TextResponse(tc.response))
		if res.Correct != tc.correct {
			t.Errorf("Grade(%q).Correct = %v, want %v", tc.response, res.Correct, tc.correct)
		}
	}
}

func TestGrade_UnsupportedType(t *testing.T) {
	item := catalog.Item{Type: "essay"}
	res := Grade(item, TextResponse("anything"))
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.Reason != ReasonUnsupportedType {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonUnsupportedType)
	}
}

func TestGrade_Deterministic(t *testing.T) {
	first := Grade(mcqItem, ChoiceResponse(0))
	for i := 0; i < 5; i++ {
		if got := Grade(mcqItem, ChoiceResponse(0)); got != first {
			t.Fatalf("result changed between calls: %+v vs %+v", got, first)
		}
	}
}
