package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/concepts.json
var conceptsJSON []byte

//go:embed data/items.json
var itemsJSON []byte

//go:embed data/rules.json
var rulesJSON []byte

//go:embed data/roster.json
var rosterJSON []byte

//go:embed data/seeds.json
var seedsJSON []byte

// Catalog holds the static content collections with lookup indexes.
// It is built once at startup and read-only afterwards. Lookups never
// fail hard: absent ids resolve to (zero, false).
type Catalog struct {
	concepts []Concept
	items    []Item
	rules    Rules
	roster   []RosterEntry
	seeds    []Seed

	conceptIdx     map[string]int
	itemIdx        map[string]int
	itemsByConcept map[string][]Item
}

// Load parses and validates the embedded content files and builds the
// lookup indexes. This is the only place content is validated; the
// rest of the engine trusts the catalog.
func Load() (*Catalog, error) {
	if err := validateAll(); err != nil {
		return nil, err
	}

	c := &Catalog{}
	if err := json.Unmarshal(conceptsJSON, &c.concepts); err != nil {
		return nil, fmt.Errorf("parse concepts: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &c.items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	if err := json.Unmarshal(rulesJSON, &c.rules); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := json.Unmarshal(rosterJSON, &c.roster); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := json.Unmarshal(seedsJSON, &c.seeds); err != nil {
		return nil, fmt.Errorf("parse seeds: %w", err)
	}
	c.buildIndexes()
	return c, nil
}

// New builds a catalog from caller-supplied collections. Used by tests
// and by any embedder that ships its own content.
func New(concepts []Concept, items []Item, rules Rules) *Catalog {
	c := &Catalog{concepts: concepts, items: items, rules: rules}
	c.buildIndexes()
	return c
}

func (c *Catalog) buildIndexes() {
	c.conceptIdx = make(map[string]int, len(c.concepts))
	for i := range c.concepts {
		c.concepts[i].Order = i
		c.conceptIdx[c.concepts[i].ID] = i
	}

	c.itemIdx = make(map[string]int, len(c.items))
	c.itemsByConcept = make(map[string][]Item)
	for i := range c.items {
		if c.items[i].Difficulty == 0 {
			c.items[i].Difficulty = 1
		}
		c.itemIdx[c.items[i].ID] = i
		c.itemsByConcept[c.items[i].ConceptID] = append(c.itemsByConcept[c.items[i].ConceptID], c.items[i])
	}
}

// Concepts returns all concepts in catalog order.
func (c *Catalog) Concepts() []Concept {
	return c.concepts
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Rules returns the global rule parameters.
func (c *Catalog) Rules() Rules {
	return c.rules
}

// Roster returns the demo class roster.
func (c *Catalog) Roster() []RosterEntry {
	return c.roster
}

// ConceptByID looks up a concept by id.
func (c *Catalog) ConceptByID(id string) (Concept, bool) {
	i, ok := c.conceptIdx[id]
	if !ok {
		return Concept{}, false
	}
	return c.concepts[i], true
}

// ItemByID looks up an item by id.
func (c *Catalog) ItemByID(id string) (Item, bool) {
	i, ok := c.itemIdx[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// ItemsByConcept returns the items of a concept in catalog order.
func (c *Catalog) ItemsByConcept(conceptID string) []Item {
	return c.itemsByConcept[conceptID]
}

// NextConcept returns the concept that follows the given one in the
// catalog sequence, if any.
func (c *Catalog) NextConcept(id string) (Concept, bool) {
	i, ok := c.conceptIdx[id]
	if !ok || i+1 >= len(c.concepts) {
		return Concept{}, false
	}
	return c.concepts[i+1], true
}

// FirstItem returns the first item in catalog order.
func (c *Catalog) FirstItem() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[0], true
}

// SeedByID looks up a launch seed by id.
func (c *Catalog) SeedByID(id string) (Seed, bool) {
	for _, s := range c.seeds {
		if s.ID == id {
			return s, true
		}
	}
	return Seed{}, false
}
