package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sevenacademy/leaflab/internal/ui/theme"
)

// ChoiceList is the answer selector for multiple-choice items. After
// submission it recolors the options to show the correct answer and
// the learner's pick.
type ChoiceList struct {
	Options     []string
	AnswerIndex int
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewChoiceList creates a choice list for an item's options.
func NewChoiceList(options []string, answerIndex int) ChoiceList {
	return ChoiceList{
		Options:     options,
		AnswerIndex: answerIndex,
		ChosenIndex: -1,
	}
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the choice list.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	var s string

	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Submitted && i == c.AnswerIndex:
			s += theme.Correct.Render(line) + "\n"
		case c.Submitted && i == c.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
