package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/sevenacademy/leaflab/internal/session"
	"github.com/sevenacademy/leaflab/internal/ui/components"
	"github.com/sevenacademy/leaflab/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.exhausted {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No more items to practice.\n\n  Press any key to go back.")
	}

	item, ok := s.session.CurrentItem()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Selecting an item...")
	}

	var b strings.Builder

	// Concept line with running score.
	conceptName := item.ConceptID
	if c, ok := s.cat.ConceptByID(item.ConceptID); ok {
		conceptName = c.Name
	}
	correct := 0
	for _, h := range s.session.History() {
		if h.Correct {
			correct++
		}
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Concept: %s", conceptName))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("attempts %d   correct %d", len(s.session.History()), correct))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Item stem.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(item.Stem))
	b.WriteString("\n\n")

	// Answer area.
	if s.useInput {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Render(s.choices.View()))
	}
	b.WriteString("\n")

	// Hint card, once unlocked.
	if hint, ok := s.session.Hint(); ok {
		label := "Hint"
		if s.session.HintLevel() == sess.HintTargeted {
			label = "Hint (targeted)"
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" + theme.Hint.Render(hint))
		b.WriteString("\n" + lipgloss.NewStyle().PaddingLeft(4).Render(card) + "\n")
	}

	// Feedback banner.
	if res := s.session.LastResult(); res != nil {
		var banner string
		if res.Correct {
			banner = theme.Correct.Render("  Correct!")
		} else {
			banner = theme.Incorrect.Render("  Incorrect")
			if res.MisconceptionTag != "" {
				banner += lipgloss.NewStyle().Foreground(theme.Warn).Render("  (" + res.MisconceptionTag + ")")
			}
		}
		b.WriteString("\n" + banner + "\n")
	}

	b.WriteString("\n" + s.renderMastery(width))

	return b.String()
}

// renderMastery draws one progress bar per concept, catalog order.
func (s *Screen) renderMastery(width int) string {
	m := s.session.Mastery()
	if len(m) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Mastery") + "\n")
	for _, c := range s.cat.Concepts() {
		if _, ok := m[c.ID]; !ok {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("  %-26s", c.Name),
			m.Value(c.ID)/100,
			true,
			min(width-6, 70),
		)
		b.WriteString(bar.View() + "\n")
	}
	return b.String()
}
