// Package planner builds the spaced-review plan. The plan is a pure
// function of (mastery, intensity, today): it is recomputed from
// scratch on every change, never patched incrementally, so it cannot
// go stale.
package planner

import (
	"sort"
	"time"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/mastery"
)

// Intensity selects which spaced interval set to use.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityStandard Intensity = "standard"
	IntensityIntense  Intensity = "intense"
)

// ParseIntensity maps a raw string to an Intensity.
func ParseIntensity(s string) (Intensity, bool) {
	switch Intensity(s) {
	case IntensityLight, IntensityStandard, IntensityIntense:
		return Intensity(s), true
	}
	return "", false
}

// Reason explains why a concept appears in the plan.
type Reason string

const (
	ReasonWeak   Reason = "weak"   // mastery below the weak threshold
	ReasonVerify Reason = "verify" // retention check for adequate mastery
)

// HorizonDays bounds the plan window: entries land within
// [today, today+HorizonDays] inclusive.
const HorizonDays = 14

// Entry is one dated review in the plan.
type Entry struct {
	ConceptID string
	Date      time.Time // calendar day, midnight in today's location
	Reason    Reason
}

// ISODate formats the entry date as an ISO calendar day.
func (e Entry) ISODate() string {
	return e.Date.Format("2006-01-02")
}

// Rebuild produces the full ordered review plan: one entry per
// (concept in mastery map) x (offset for the intensity), filtered to
// the 14-day horizon and sorted by date then concept id.
func Rebuild(m mastery.Map, intensity Intensity, today time.Time, rules catalog.Rules) []Entry {
	day := dateOnly(today)
	offsets := intervalsFor(intensity, rules.SpacedIntervalDays)

	// Deterministic concept iteration.
	conceptIDs := make([]string, 0, len(m))
	for id := range m {
		conceptIDs = append(conceptIDs, id)
	}
	sort.Strings(conceptIDs)

	var entries []Entry
	for _, conceptID := range conceptIDs {
		reason := ReasonVerify
		if m.Value(conceptID) < rules.Thresholds.Weak {
			reason = ReasonWeak
		}
		for _, offset := range offsets {
			if offset < 0 || offset > HorizonDays {
				continue
			}
			entries = append(entries, Entry{
				ConceptID: conceptID,
				Date:      day.AddDate(0, 0, offset),
				Reason:    reason,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ConceptID < entries[j].ConceptID
	})
	return entries
}

func intervalsFor(intensity Intensity, si catalog.SpacedIntervals) []int {
	switch intensity {
	case IntensityLight:
		return si.Light
	case IntensityIntense:
		return si.Intense
	default:
		return si.Standard
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
