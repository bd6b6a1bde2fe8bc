// Package selector decides the next practice item from session
// history and mastery. The decision logic is an ordered list of
// guard/pick rules evaluated top to bottom; the first rule whose
// guard holds and whose pick succeeds wins. Selection is fully
// deterministic: no randomness, no hidden state.
package selector

import (
	"sort"
	"strings"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/mastery"
)

// HistoryEntry is one graded attempt in the session log.
type HistoryEntry struct {
	ItemID           string
	ConceptID        string
	Correct          bool
	MisconceptionTag string
}

// Input bundles everything a selection decision reads.
type Input struct {
	Catalog *catalog.Catalog
	History []HistoryEntry
	Mastery mastery.Map
}

// Rule is one guard/pick pair in the decision list. Guard says
// whether the rule applies; Pick produces an item id. A rule whose
// guard holds but whose pick fails falls through to the next rule.
type Rule struct {
	Name  string
	Guard func(Input) bool
	Pick  func(Input) (string, bool)
}

// Rules returns the decision list in precedence order.
func Rules() []Rule {
	return []Rule{
		{Name: "bootstrap", Guard: noHistory, Pick: pickFirstItem},
		{Name: "remediate", Guard: needsRemediation, Pick: pickEasiest},
		{Name: "advance", Guard: readyToAdvance, Pick: pickNextConcept},
		{Name: "escalate", Guard: always, Pick: pickHardest},
	}
}

// NextItem evaluates the rule list and returns the chosen item id.
// ok is false only when the catalog has no items at all.
func NextItem(in Input) (string, bool) {
	for _, r := range Rules() {
		if !r.Guard(in) {
			continue
		}
		if id, ok := r.Pick(in); ok {
			return id, true
		}
	}
	return "", false
}

func always(Input) bool { return true }

func noHistory(in Input) bool {
	return len(in.History) == 0
}

// needsRemediation holds when the most recent attempt carried a
// misconception tag, or when mastery of its concept sits below the
// weak threshold. A tagged attempt remediates even at high mastery.
func needsRemediation(in Input) bool {
	last := in.History[len(in.History)-1]
	if strings.HasPrefix(last.MisconceptionTag, "misconception:") {
		return true
	}
	return in.Mastery.Value(last.ConceptID) < in.Catalog.Rules().Thresholds.Weak
}

// readyToAdvance requires mastery at or above the advance threshold
// plus exactly-two-entry lookback with both attempts correct. Fewer
// than two entries never qualifies.
func readyToAdvance(in Input) bool {
	if len(in.History) < 2 {
		return false
	}
	last := in.History[len(in.History)-1]
	prev := in.History[len(in.History)-2]
	if !last.Correct || !prev.Correct {
		return false
	}
	return in.Mastery.Value(last.ConceptID) >= in.Catalog.Rules().Thresholds.Advance
}

func pickFirstItem(in Input) (string, bool) {
	it, ok := in.Catalog.FirstItem()
	return it.ID, ok
}

func pickEasiest(in Input) (string, bool) {
	return pickByDifficulty(in, lastConcept(in), false)
}

func pickHardest(in Input) (string, bool) {
	return pickByDifficulty(in, lastConcept(in), true)
}

// pickNextConcept moves to the concept following the current one in
// catalog order, selecting its first item. Fails (falls through) when
// there is no next concept or it has no items.
func pickNextConcept(in Input) (string, bool) {
	next, ok := in.Catalog.NextConcept(lastConcept(in))
	if !ok {
		return "", false
	}
	items := in.Catalog.ItemsByConcept(next.ID)
	if len(items) == 0 {
		return "", false
	}
	return items[0].ID, true
}

func lastConcept(in Input) string {
	if len(in.History) == 0 {
		return ""
	}
	return in.History[len(in.History)-1].ConceptID
}

// pickByDifficulty selects the lowest- or highest-difficulty item in
// a concept, breaking ties by catalog order. Fallback chain: first
// item of the concept, then the first item globally.
func pickByDifficulty(in Input, conceptID string, hardest bool) (string, bool) {
	items := in.Catalog.ItemsByConcept(conceptID)
	if len(items) == 0 {
		it, ok := in.Catalog.FirstItem()
		return it.ID, ok
	}

	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if hardest {
			return sorted[i].Difficulty > sorted[j].Difficulty
		}
		return sorted[i].Difficulty < sorted[j].Difficulty
	})
	return sorted[0].ID, true
}
