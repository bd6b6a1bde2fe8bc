package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

// WriteCSV emits the roster as student_id,name,concept,mastery rows.
// Students keep roster order; each student's concepts are sorted so
// the output is deterministic.
func WriteCSV(w io.Writer, entries []catalog.RosterEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"student_id", "name", "concept", "mastery"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		for _, conceptID := range sortedConcepts(e.Mastery) {
			record := []string{
				e.StudentID,
				e.Name,
				conceptID,
				strconv.FormatFloat(e.Mastery[conceptID], 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write row for %s: %w", e.StudentID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
