// Package planner implements the spaced-review planner screen:
// intensity selection plus the dated review plan for the next two
// weeks. The plan is rebuilt from scratch on every intensity change.
package planner

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/mastery"
	"github.com/sevenacademy/leaflab/internal/planner"
	"github.com/sevenacademy/leaflab/internal/router"
	"github.com/sevenacademy/leaflab/internal/ui/layout"
	"github.com/sevenacademy/leaflab/internal/ui/theme"
)

var intensities = []planner.Intensity{
	planner.IntensityLight,
	planner.IntensityStandard,
	planner.IntensityIntense,
}

// Screen shows the spaced-review plan for the learner's mastery map.
type Screen struct {
	cat       *catalog.Catalog
	mastery   mastery.Map
	intensity planner.Intensity
	plan      []planner.Entry
	now       func() time.Time
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the planner screen over the learner's current mastery.
func New(cat *catalog.Catalog, m mastery.Map, intensity planner.Intensity) *Screen {
	s := &Screen{cat: cat, mastery: m, intensity: intensity, now: time.Now}
	s.rebuild()
	return s
}

func (s *Screen) rebuild() {
	s.plan = planner.Rebuild(s.mastery, s.intensity, s.now(), s.cat.Rules())
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Review Planner" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Intensity"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	idx := 0
	for i, in := range intensities {
		if in == s.intensity {
			idx = i
		}
	}

	switch kmsg.String() {
	case "left", "h":
		if idx > 0 {
			s.intensity = intensities[idx-1]
			s.rebuild()
		}
	case "right", "l":
		if idx < len(intensities)-1 {
			s.intensity = intensities[idx+1]
			s.rebuild()
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	// Intensity selector.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Intensity") + "\n  ")
	for _, in := range intensities {
		label := " " + string(in) + " "
		if in == s.intensity {
			b.WriteString(theme.Selected.Render("[" + label + "]"))
		} else {
			b.WriteString(theme.Unselected.Render(" " + label + " "))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if len(s.plan) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing to review yet — practice some items first."))
		return b.String()
	}

	// Per-day counts over the horizon.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Plan (next %d days)", planner.HorizonDays)) + "\n")
	counts := map[string]int{}
	var days []string
	for _, e := range s.plan {
		if counts[e.ISODate()] == 0 {
			days = append(days, e.ISODate())
		}
		counts[e.ISODate()]++
	}
	for _, d := range days {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(d),
			strings.Repeat("■", counts[d]),
		))
	}
	b.WriteString("\n")

	// Full entry list.
	for _, e := range s.plan {
		name := e.ConceptID
		if c, ok := s.cat.ConceptByID(e.ConceptID); ok {
			name = c.Name
		}
		reasonStyle := theme.Correct
		if e.Reason == planner.ReasonWeak {
			reasonStyle = theme.Incorrect
		}
		b.WriteString(fmt.Sprintf("  %s  %-28s %s\n",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.ISODate()),
			name,
			reasonStyle.Render(string(e.Reason)),
		))
	}

	return b.String()
}
