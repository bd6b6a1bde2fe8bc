package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/mastery"
)

var testRules = catalog.Rules{
	Thresholds: catalog.Thresholds{Weak: 30, Advance: 80},
	SpacedIntervalDays: catalog.SpacedIntervals{
		Light:    []int{1, 7},
		Standard: []int{1, 3, 7},
		Intense:  []int{1, 2, 4, 6, 9, 12},
	},
}

var today = time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

func TestRebuild_LightIntensityWeakConcept(t *testing.T) {
	m := mastery.Map{"x": 10}
	entries := Rebuild(m, IntensityLight, today, testRules)

	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, "x", e.ConceptID)
		require.Equal(t, ReasonWeak, e.Reason)
	}
	require.Equal(t, "2026-03-03", entries[0].ISODate())
	require.Equal(t, "2026-03-09", entries[1].ISODate())
}

func TestRebuild_VerifyReasonAtOrAboveWeakThreshold(t *testing.T) {
	m := mastery.Map{"x": 30}
	entries := Rebuild(m, IntensityLight, today, testRules)

	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.Equal(t, ReasonVerify, e.Reason)
	}
}

func TestRebuild_WithinHorizon(t *testing.T) {
	rules := testRules
	rules.SpacedIntervalDays.Standard = []int{0, 1, 14, 15, 30}

	m := mastery.Map{"x": 50}
	entries := Rebuild(m, IntensityStandard, today, rules)

	require.Len(t, entries, 3) // 0, 1, 14 survive; 15 and 30 are dropped
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, HorizonDays)
	for _, e := range entries {
		require.False(t, e.Date.Before(start), "entry before today: %s", e.ISODate())
		require.False(t, e.Date.After(end), "entry beyond horizon: %s", e.ISODate())
	}
}

func TestRebuild_SortedByDateThenConcept(t *testing.T) {
	m := mastery.Map{"zebra": 10, "alpha": 90, "mid": 40}
	entries := Rebuild(m, IntensityIntense, today, testRules)

	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Date.Equal(cur.Date) {
			require.LessOrEqual(t, prev.ConceptID, cur.ConceptID)
		} else {
			require.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestRebuild_EmptyMasteryYieldsEmptyPlan(t *testing.T) {
	require.Empty(t, Rebuild(mastery.Map{}, IntensityStandard, today, testRules))
	require.Empty(t, Rebuild(nil, IntensityStandard, today, testRules))
}

func TestRebuild_Deterministic(t *testing.T) {
	m := mastery.Map{"b": 20, "a": 70, "c": 5}
	first := Rebuild(m, IntensityStandard, today, testRules)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Rebuild(m, IntensityStandard, today, testRules))
	}
}

func TestParseIntensity(t *testing.T) {
	for _, valid := range []string{"light", "standard", "intense"} {
		got, ok := ParseIntensity(valid)
		require.True(t, ok)
		require.Equal(t, Intensity(valid), got)
	}
	_, ok := ParseIntensity("extreme")
	require.False(t, ok)
}
