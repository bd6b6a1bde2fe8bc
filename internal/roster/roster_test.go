package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

var th = catalog.Thresholds{Weak: 30, Advance: 80}

func TestBandFor(t *testing.T) {
	cases := []struct {
		value float64
		want  Band
	}{
		{0, BandWeak},
		{29.9, BandWeak},
		{30, BandDeveloping},
		{79.9, BandDeveloping},
		{80, BandStrong},
		{100, BandStrong},
	}
	for _, tc := range cases {
		if got := BandFor(tc.value, th); got != tc.want {
			t.Errorf("BandFor(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func testRoster() []catalog.RosterEntry {
	return []catalog.RosterEntry{
		{
			StudentID: "s-001", Name: "Ava",
			Mastery: map[string]float64{"overview": 72, "light": 45, "calvin": 10},
		},
		{
			StudentID: "s-002", Name: "Ben",
			Mastery: map[string]float64{"overview": 88, "light": 81, "calvin": 64},
		},
		{
			StudentID: "s-003", Name: "Carmen",
			Mastery: map[string]float64{"overview": 25, "light": 5, "calvin": 40},
			Flags:   []string{"needs-checkin"},
		},
	}
}

func TestTriage_OrdersByWorstConceptAscending(t *testing.T) {
	rows := Triage(testRoster())
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}

	if rows[0].StudentID != "s-003" || rows[0].WorstConceptID != "light" || rows[0].Value != 5 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if !rows[0].Flagged {
		t.Error("s-003 should carry its flag")
	}
	if rows[1].StudentID != "s-001" || rows[1].WorstConceptID != "calvin" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
	if rows[2].StudentID != "s-002" || rows[2].Value != 64 {
		t.Errorf("rows[2] = %+v", rows[2])
	}
}

func TestTriage_EmptyMastery(t *testing.T) {
	rows := Triage([]catalog.RosterEntry{{StudentID: "s-009", Name: "Nadia"}})
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].WorstConceptID != "" || rows[0].Value != 0 {
		t.Errorf("rows[0] = %+v, want empty worst concept", rows[0])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	entries := []catalog.RosterEntry{
		{
			StudentID: "s-001", Name: "Ava",
			Mastery: map[string]float64{"light": 45, "calvin": 10.5},
		},
	}
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"student_id,name,concept,mastery",
		"s-001,Ava,calvin,10.5",
		"s-001,Ava,light,45",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
