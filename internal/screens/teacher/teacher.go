// Package teacher implements the class roster screen: the mastery
// heatmap, the triage list, and CSV export.
package teacher

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/roster"
	"github.com/sevenacademy/leaflab/internal/router"
	"github.com/sevenacademy/leaflab/internal/ui/layout"
	"github.com/sevenacademy/leaflab/internal/ui/theme"
)

// ExportFilename is where the roster CSV lands on export.
const ExportFilename = "leaflab-roster.csv"

// Screen shows the demo class roster for a teacher. Acknowledgements
// are per-screen-visit state, never persisted.
type Screen struct {
	cat       *catalog.Catalog
	triage    []roster.TriageRow
	selected  int
	acked     map[string]bool
	statusMsg string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the roster screen.
func New(cat *catalog.Catalog) *Screen {
	return &Screen{
		cat:    cat,
		triage: roster.Triage(cat.Roster()),
		acked:  make(map[string]bool),
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Class Roster" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "A", Description: "Acknowledge"},
		{Key: "E", Description: "Export CSV"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.triage)-1 {
			s.selected++
		}
	case "a":
		if s.selected < len(s.triage) {
			id := s.triage[s.selected].StudentID
			s.acked[id] = !s.acked[id]
		}
	case "e":
		s.export()
	}
	return s, nil
}

func (s *Screen) export() {
	f, err := os.Create(ExportFilename)
	if err != nil {
		s.statusMsg = "export failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := roster.WriteCSV(f, s.cat.Roster()); err != nil {
		s.statusMsg = "export failed: " + err.Error()
		return
	}
	s.statusMsg = "exported " + ExportFilename
}

func (s *Screen) View(width, height int) string {
	th := s.cat.Rules().Thresholds
	var b strings.Builder

	// Heatmap: one row per student, one cell per concept.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Class Heatmap") + "\n")
	header := fmt.Sprintf("  %-16s", "Student")
	for _, c := range s.cat.Concepts() {
		header += fmt.Sprintf("%-24s", c.Name)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header) + "\n")

	for _, r := range s.cat.Roster() {
		row := fmt.Sprintf("  %-16s", r.Name)
		b.WriteString(row)
		for _, c := range s.cat.Concepts() {
			v := r.Mastery[c.ID]
			cell := fmt.Sprintf("%-24s", fmt.Sprintf("%.0f", v))
			b.WriteString(bandStyle(roster.BandFor(v, th)).Render(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Triage list, most struggling first.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Triage") + "\n")
	for i, t := range s.triage {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-16s %-28s %3.0f", prefix, t.Name, t.WorstConceptID, t.Value)
		style := bandStyle(roster.BandFor(t.Value, th))
		if s.acked[t.StudentID] {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line))
		switch {
		case s.acked[t.StudentID]:
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓"))
		case t.Flagged:
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Warn).Render("⚑"))
		}
		b.WriteString("\n")
	}

	if s.statusMsg != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+s.statusMsg) + "\n")
	}

	return b.String()
}

func bandStyle(band roster.Band) lipgloss.Style {
	switch band {
	case roster.BandWeak:
		return lipgloss.NewStyle().Foreground(theme.Error)
	case roster.BandDeveloping:
		return lipgloss.NewStyle().Foreground(theme.Warn)
	default:
		return lipgloss.NewStyle().Foreground(theme.Success)
	}
}
