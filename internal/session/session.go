// Package session owns the per-session tutoring loop: the
// IDLE -> AWAIT_ANSWER -> EVALUATE -> FEEDBACK state machine, the
// append-only attempt history, the hint ladder, and the mastery
// deltas applied on each graded attempt. A Session is an explicit
// state object; callers may run any number of sessions side by side.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/grading"
	"github.com/sevenacademy/leaflab/internal/mastery"
	"github.com/sevenacademy/leaflab/internal/selector"
)

// Mode is the session interaction mode.
type Mode string

const (
	ModeGuided Mode = "guided" // feedback + hints between items
	ModeQuiz   Mode = "quiz"   // free advancement, no feedback dwell
)

// ParseMode maps a raw string to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeGuided, ModeQuiz:
		return Mode(s), true
	}
	return "", false
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitAnswer
	PhaseEvaluate
	PhaseFeedback
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseAwaitAnswer:
		return "AWAIT_ANSWER"
	case PhaseEvaluate:
		return "EVALUATE"
	case PhaseFeedback:
		return "FEEDBACK"
	default:
		return "UNKNOWN"
	}
}

// HintLevel is the current rung of the hint ladder.
type HintLevel int

const (
	HintNone HintLevel = iota
	HintBasic
	HintTargeted
)

// Mastery deltas applied by the session loop per graded attempt.
const (
	CorrectDelta   = 10.0
	IncorrectDelta = -7.0
)

// ErrNotAwaitingAnswer is returned by Submit outside AWAIT_ANSWER.
var ErrNotAwaitingAnswer = errors.New("session: not awaiting an answer")

// Session is the ephemeral per-learner tutoring state. It lives only
// in memory; a new session always starts from a clean history.
type Session struct {
	ID   string
	Mode Mode

	cat        *catalog.Catalog
	phase      Phase
	current    string
	history    []selector.HistoryEntry
	mastery    mastery.Map
	hintLevel  HintLevel
	lastResult *grading.Result
}

// New creates an idle session over the given catalog.
func New(cat *catalog.Catalog, mode Mode) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Mode:    mode,
		cat:     cat,
		phase:   PhaseIdle,
		mastery: mastery.Map{},
	}
}

// Start selects the first item and moves to AWAIT_ANSWER. With an
// empty catalog the session stays idle and ok is false.
func (s *Session) Start() (catalog.Item, bool) {
	id, ok := selector.NextItem(s.selectorInput())
	if !ok {
		return catalog.Item{}, false
	}
	s.present(id)
	return s.mustItem(id), true
}

// Submit grades a response against the current item. It is the
// atomic EVALUATE step: grade, apply the mastery delta, append the
// history entry, and advance the hint ladder, then land in FEEDBACK.
func (s *Session) Submit(resp grading.Response) (grading.Result, error) {
	if s.phase != PhaseAwaitAnswer {
		return grading.Result{}, ErrNotAwaitingAnswer
	}
	item, ok := s.cat.ItemByID(s.current)
	if !ok {
		return grading.Result{}, ErrNotAwaitingAnswer
	}

	s.phase = PhaseEvaluate
	res := grading.Grade(item, resp)

	delta := IncorrectDelta
	if res.Correct {
		delta = CorrectDelta
	}
	s.mastery = mastery.Nudge(s.mastery, item.ConceptID, delta)

	s.history = append(s.history, selector.HistoryEntry{
		ItemID:           item.ID,
		ConceptID:        item.ConceptID,
		Correct:          res.Correct,
		MisconceptionTag: res.MisconceptionTag,
	})

	// Hint ladder: first miss unlocks the basic hint, a second
	// consecutive miss escalates to the targeted one. The level only
	// resets when a new item is presented.
	if !res.Correct {
		if s.hintLevel == HintNone {
			s.hintLevel = HintBasic
		} else {
			s.hintLevel = HintTargeted
		}
	}

	s.lastResult = &res
	s.phase = PhaseFeedback
	return res, nil
}

// Advance selects the next item and returns to AWAIT_ANSWER. Guided
// sessions advance from FEEDBACK; quiz mode may also skip ahead from
// AWAIT_ANSWER without submitting.
func (s *Session) Advance() (catalog.Item, bool) {
	switch s.phase {
	case PhaseFeedback:
	case PhaseAwaitAnswer:
		if s.Mode != ModeQuiz {
			return catalog.Item{}, false
		}
	default:
		return catalog.Item{}, false
	}

	id, ok := selector.NextItem(s.selectorInput())
	if !ok {
		s.phase = PhaseIdle
		return catalog.Item{}, false
	}
	s.present(id)
	return s.mustItem(id), true
}

// present installs the selected item and resets per-item state. The
// hint ladder survives a re-present of the same item, so a second
// consecutive miss during remediation escalates to the targeted hint.
func (s *Session) present(id string) {
	if id != s.current {
		s.hintLevel = HintNone
	}
	s.current = id
	s.lastResult = nil
	s.phase = PhaseAwaitAnswer
}

// ApplySeed applies a launch seed: mode plus absolute mastery
// overrides. Intensity is planner state and stays with the caller.
func (s *Session) ApplySeed(seed catalog.Seed) {
	if m, ok := ParseMode(seed.Mode); ok {
		s.Mode = m
	}
	for conceptID, value := range seed.OverrideMastery {
		s.mastery = mastery.Set(s.mastery, conceptID, value)
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentItem returns the item being presented, if any.
func (s *Session) CurrentItem() (catalog.Item, bool) {
	if s.current == "" {
		return catalog.Item{}, false
	}
	return s.cat.ItemByID(s.current)
}

// History returns the graded attempts so far, oldest first.
func (s *Session) History() []selector.HistoryEntry {
	return s.history
}

// Mastery returns the current mastery map.
func (s *Session) Mastery() mastery.Map {
	return s.mastery
}

// HintLevel returns the current rung of the hint ladder.
func (s *Session) HintLevel() HintLevel {
	return s.hintLevel
}

// Hint returns the hint text unlocked for the current item, if any.
func (s *Session) Hint() (string, bool) {
	item, ok := s.CurrentItem()
	if !ok {
		return "", false
	}
	switch s.hintLevel {
	case HintBasic:
		return item.HintBasic, item.HintBasic != ""
	case HintTargeted:
		return item.HintTargeted, item.HintTargeted != ""
	}
	return "", false
}

// LastResult returns the grading result of the most recent Submit,
// cleared when a new item is presented.
func (s *Session) LastResult() *grading.Result {
	return s.lastResult
}

func (s *Session) selectorInput() selector.Input {
	return selector.Input{Catalog: s.cat, History: s.history, Mastery: s.mastery}
}

func (s *Session) mustItem(id string) catalog.Item {
	item, _ := s.cat.ItemByID(id)
	return item
}
