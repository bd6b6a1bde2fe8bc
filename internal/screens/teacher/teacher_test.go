package teacher

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestAcknowledgeTogglesSelectedStudent(t *testing.T) {
	s := New(loadCatalog(t))
	first := s.triage[0].StudentID

	s.Update(tea.KeyPressMsg{Code: 'a'})
	if !s.acked[first] {
		t.Fatal("expected the selected student to be acknowledged")
	}
	if !strings.Contains(s.View(100, 40), "✓") {
		t.Error("acknowledged row should render a check mark")
	}

	s.Update(tea.KeyPressMsg{Code: 'a'})
	if s.acked[first] {
		t.Error("second press must clear the acknowledgement")
	}
}

func TestAcknowledgeFollowsCursor(t *testing.T) {
	s := New(loadCatalog(t))
	if len(s.triage) < 2 {
		t.Fatal("demo roster should triage at least two students")
	}

	s.Update(tea.KeyPressMsg{Code: 'j'})
	s.Update(tea.KeyPressMsg{Code: 'a'})

	if s.acked[s.triage[0].StudentID] {
		t.Error("first row must stay unacknowledged")
	}
	if !s.acked[s.triage[1].StudentID] {
		t.Error("expected the second row to be acknowledged")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	s := New(loadCatalog(t))

	s.Update(tea.KeyPressMsg{Code: 'k'})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 at top", s.selected)
	}

	for range s.triage {
		s.Update(tea.KeyPressMsg{Code: 'j'})
	}
	if s.selected != len(s.triage)-1 {
		t.Errorf("selected = %d, want last row %d", s.selected, len(s.triage)-1)
	}
}
