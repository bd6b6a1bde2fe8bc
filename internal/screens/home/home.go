// Package home implements the main menu screen. It owns the learner
// session shared by the practice and planner screens.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/planner"
	"github.com/sevenacademy/leaflab/internal/router"
	plannerscreen "github.com/sevenacademy/leaflab/internal/screens/planner"
	sessionscreen "github.com/sevenacademy/leaflab/internal/screens/session"
	"github.com/sevenacademy/leaflab/internal/screens/teacher"
	sess "github.com/sevenacademy/leaflab/internal/session"
	"github.com/sevenacademy/leaflab/internal/ui/components"
	"github.com/sevenacademy/leaflab/internal/ui/theme"
)

// Config carries the launch configuration applied to new sessions.
type Config struct {
	Mode      sess.Mode
	Intensity planner.Intensity
	Seed      *catalog.Seed
}

// Screen is the home menu.
type Screen struct {
	cat     *catalog.Catalog
	cfg     Config
	menu    components.Menu
	session *sess.Session
}

var _ router.Screen = (*Screen)(nil)

// New creates the home screen and the initial learner session.
func New(cat *catalog.Catalog, cfg Config) *Screen {
	s := &Screen{cat: cat, cfg: cfg}
	s.session = s.newSession()

	items := []components.MenuItem{
		{Label: "PRACTICE SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(cat, s.session)}
			}
		}},
		{Label: "REVIEW PLANNER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: plannerscreen.New(cat, s.session.Mastery(), s.cfg.Intensity),
				}
			}
		}},
		{Label: "CLASS ROSTER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: teacher.New(cat)}
			}
		}},
		{Label: "RESET SESSION", Action: func() tea.Cmd {
			s.session = s.newSession()
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

// newSession builds a fresh session with the launch seed applied.
// Starting a new session always resets history.
func (s *Screen) newSession() *sess.Session {
	session := sess.New(s.cat, s.cfg.Mode)
	if s.cfg.Seed != nil {
		session.ApplySeed(*s.cfg.Seed)
	}
	return session
}

// Mode returns the mode of the active learner session, for the header.
func (s *Screen) Mode() sess.Mode {
	return s.session.Mode
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Home" }

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("LEAFLAB"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("A deterministic photosynthesis tutor"))
	b.WriteString("\n\n")

	attempts := len(s.session.History())
	summary := fmt.Sprintf("%d concepts · %d items · %d attempts this session",
		len(s.cat.Concepts()), len(s.cat.Items()), attempts)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.menu.View())
	b.WriteString(menu)

	return b.String()
}
