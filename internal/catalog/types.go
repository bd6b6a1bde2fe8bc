package catalog

// Concept is a single teachable unit. Concepts form a linear
// prerequisite chain in catalog order.
type Concept struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"-"` // position in the catalog sequence, assigned at load
}

// ItemType distinguishes how an item is answered.
type ItemType string

const (
	TypeMCQ   ItemType = "mcq"
	TypeShort ItemType = "short"
)

// Item is a single practice question. An item belongs to exactly one
// concept and is immutable after load.
type Item struct {
	ID                      string   `json:"id"`
	ConceptID               string   `json:"concept_id"`
	Type                    ItemType `json:"type"`
	Stem                    string   `json:"stem"`
	Difficulty              int      `json:"difficulty,omitempty"`
	Choices                 []string `json:"choices,omitempty"`
	AnswerIndex             int      `json:"answer_index,omitempty"`
	Answer                  string   `json:"answer,omitempty"`
	MisconceptionKeyIndexes []int    `json:"misconception_key_indexes,omitempty"`
	MisconceptionTag        string   `json:"misconception_tag,omitempty"`
	HintBasic               string   `json:"hint_basic,omitempty"`
	HintTargeted            string   `json:"hint_targeted,omitempty"`
}

// Thresholds holds the mastery cut points used by the selector,
// planner, and roster views.
type Thresholds struct {
	Weak    float64 `json:"weak"`
	Advance float64 `json:"advance"`
}

// SpacedIntervals maps each review intensity to its day offsets.
type SpacedIntervals struct {
	Light    []int `json:"light"`
	Standard []int `json:"standard"`
	Intense  []int `json:"intense"`
}

// Rules is the global, immutable rule parameter set loaded once at
// startup.
type Rules struct {
	Thresholds         Thresholds      `json:"thresholds"`
	SpacedIntervalDays SpacedIntervals `json:"spaced_intervals_days"`
}

// RosterEntry is one student row in the demo class roster.
type RosterEntry struct {
	StudentID string             `json:"student_id"`
	Name      string             `json:"name"`
	Mastery   map[string]float64 `json:"mastery"`
	Flags     []string           `json:"flags,omitempty"`
}

// Seed describes a pre-canned starting state selectable at launch:
// an initial mode, an initial review intensity, and absolute mastery
// overrides per concept.
type Seed struct {
	ID              string             `json:"id"`
	Mode            string             `json:"mode,omitempty"`
	Intensity       string             `json:"intensity,omitempty"`
	OverrideMastery map[string]float64 `json:"override_mastery,omitempty"`
}
