package session

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/grading"
	sess "github.com/sevenacademy/leaflab/internal/session"
)

func testCatalog() *catalog.Catalog {
	concepts := []catalog.Concept{
		{ID: "photosynthesis_overview", Name: "Photosynthesis Overview"},
	}
	items := []catalog.Item{
		{
			ID: "po-1", ConceptID: "photosynthesis_overview", Type: catalog.TypeMCQ,
			Stem: "Site of photosynthesis?", Difficulty: 1,
			Choices: []string{"Mitochondrion", "Chloroplast"}, AnswerIndex: 1,
		},
	}
	rules := catalog.Rules{Thresholds: catalog.Thresholds{Weak: 30, Advance: 80}}
	return catalog.New(concepts, items, rules)
}

func TestChoiceSubmitGradesAndEntersFeedback(t *testing.T) {
	cat := testCatalog()
	core := sess.New(cat, sess.ModeGuided)
	scr := New(cat, core)

	scr.Update(tea.KeyPressMsg{Code: 'j'}) // move onto the correct choice
	scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if core.Phase() != sess.PhaseFeedback {
		t.Fatalf("phase = %v, want FEEDBACK", core.Phase())
	}
	if len(core.History()) != 1 || !core.History()[0].Correct {
		t.Errorf("history = %+v, want one correct entry", core.History())
	}
}

func TestRejectedChoiceSubmitUnsubmitsWidget(t *testing.T) {
	cat := testCatalog()
	core := sess.New(cat, sess.ModeGuided)
	scr := New(cat, core)

	// Grade through the core directly so the session sits in FEEDBACK
	// while the widget still believes an answer is pending.
	if _, err := core.Submit(grading.ChoiceResponse(0)); err != nil {
		t.Fatal(err)
	}
	scr.choices.Submitted = true
	scr.choices.ChosenIndex = 0

	scr.updateAwaitAnswer(tea.KeyPressMsg{Code: tea.KeyEnter})

	if scr.choices.Submitted {
		t.Error("widget must un-submit when the session rejects the answer")
	}
	if len(core.History()) != 1 {
		t.Errorf("history = %d entries, want 1", len(core.History()))
	}
}
