// Package roster provides the teacher-facing views over the demo
// class roster: per-student triage, mastery bands for the heatmap,
// and CSV export. It reads mastery as plain concept_id -> number and
// places no other constraint on the core.
package roster

import (
	"sort"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

// Band classifies a mastery value against the rule thresholds.
type Band string

const (
	BandWeak       Band = "weak"
	BandDeveloping Band = "developing"
	BandStrong     Band = "strong"
)

// BandFor returns the heatmap band for a mastery value.
func BandFor(value float64, th catalog.Thresholds) Band {
	switch {
	case value < th.Weak:
		return BandWeak
	case value < th.Advance:
		return BandDeveloping
	default:
		return BandStrong
	}
}

// TriageRow is one student in the triage list, keyed by their
// weakest concept.
type TriageRow struct {
	StudentID      string
	Name           string
	WorstConceptID string
	Value          float64
	Flagged        bool
}

// Triage ranks students by their weakest concept, most struggling
// first. Ties on the minimum value break by concept id, then rows tie
// by student id, keeping the list stable across rebuilds.
func Triage(entries []catalog.RosterEntry) []TriageRow {
	rows := make([]TriageRow, 0, len(entries))
	for _, e := range entries {
		row := TriageRow{
			StudentID: e.StudentID,
			Name:      e.Name,
			Flagged:   len(e.Flags) > 0,
		}

		conceptIDs := sortedConcepts(e.Mastery)
		if len(conceptIDs) > 0 {
			row.WorstConceptID = conceptIDs[0]
			row.Value = e.Mastery[conceptIDs[0]]
			for _, id := range conceptIDs[1:] {
				if e.Mastery[id] < row.Value {
					row.WorstConceptID = id
					row.Value = e.Mastery[id]
				}
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].StudentID < rows[j].StudentID
	})
	return rows
}

func sortedConcepts(m map[string]float64) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
