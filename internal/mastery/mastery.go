// Package mastery tracks a bounded [0,100] proficiency score per
// concept. Updates are copy-on-write: callers always get a new map,
// which keeps grading flows deterministic and makes concurrent reads
// of an old map safe.
package mastery

// Bounds of the mastery scale.
const (
	Min = 0.0
	Max = 100.0
)

// Map holds mastery values keyed by concept id. Absent concepts are
// treated as zero.
type Map map[string]float64

// Value returns the mastery for a concept, defaulting to 0.
func (m Map) Value(conceptID string) float64 {
	return m[conceptID]
}

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Nudge applies a bounded delta to a concept's mastery and returns a
// new map. The input map is never mutated.
func Nudge(m Map, conceptID string, delta float64) Map {
	out := m.Clone()
	out[conceptID] = clamp(m.Value(conceptID) + delta)
	return out
}

// Set assigns an absolute mastery value, clamped to bounds, and
// returns a new map. Used for seeding; live grading goes through
// Nudge.
func Set(m Map, conceptID string, value float64) Map {
	out := m.Clone()
	out[conceptID] = clamp(value)
	return out
}

func clamp(v float64) float64 {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
