// Package session implements the practice session screen: it drives
// the core session state machine from key input and renders the
// item, hint ladder, feedback, and mastery sidebar.
package session

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/grading"
	"github.com/sevenacademy/leaflab/internal/router"
	sess "github.com/sevenacademy/leaflab/internal/session"
	"github.com/sevenacademy/leaflab/internal/ui/components"
	"github.com/sevenacademy/leaflab/internal/ui/layout"
)

// Screen renders and drives one tutoring session.
type Screen struct {
	cat     *catalog.Catalog
	session *sess.Session

	choices   components.ChoiceList
	input     components.TextInput
	useInput  bool // true while the current item is short-answer
	exhausted bool
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the session screen over an existing core session. The
// session is started here if it is still idle.
func New(cat *catalog.Catalog, s *sess.Session) *Screen {
	scr := &Screen{cat: cat, session: s}
	if s.Phase() == sess.PhaseIdle {
		if _, ok := s.Start(); !ok {
			scr.exhausted = true
			return scr
		}
	}
	if item, ok := s.CurrentItem(); ok {
		scr.presentItem(item)
	}
	return scr
}

func (s *Screen) Init() tea.Cmd {
	if s.useInput {
		return s.input.Init()
	}
	return nil
}

func (s *Screen) Title() string {
	return "Practice Session"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.session.Phase() == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next item"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Back"},
	}
	if s.session.Mode == sess.ModeQuiz {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Skip"})
	}
	return hints
}

// presentItem installs the answer widget for a newly selected item.
func (s *Screen) presentItem(item catalog.Item) {
	switch item.Type {
	case catalog.TypeMCQ:
		s.useInput = false
		s.choices = components.NewChoiceList(item.Choices, item.AnswerIndex)
	default:
		s.useInput = true
		s.input = components.NewTextInput("Type your answer...", 40)
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if s.exhausted {
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch s.session.Phase() {
	case sess.PhaseAwaitAnswer:
		return s.updateAwaitAnswer(msg)
	case sess.PhaseFeedback:
		return s.updateFeedback(msg)
	}
	return s, nil
}

func (s *Screen) updateAwaitAnswer(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "tab" && s.session.Mode == sess.ModeQuiz {
			s.advance()
			return s, nil
		}
	}

	if s.useInput {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			res, err := s.session.Submit(grading.TextResponse(s.input.Value()))
			if err == nil {
				s.input.Submit(res.Correct)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if s.choices.Submitted {
		if _, err := s.session.Submit(grading.ChoiceResponse(s.choices.ChosenIndex)); err != nil {
			// Rejected out of phase; un-submit so the widget stays in
			// step with the session.
			s.choices.Submitted = false
		}
	}
	return s, cmd
}

func (s *Screen) updateFeedback(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", " ":
		s.advance()
	}
	return s, nil
}

func (s *Screen) advance() {
	item, ok := s.session.Advance()
	if !ok {
		s.exhausted = true
		return
	}
	s.presentItem(item)
}
