package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedContentIsValid(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, c.Concepts())
	require.NotEmpty(t, c.Items())
	require.NotEmpty(t, c.Roster())

	// Every item must reference a known concept.
	for _, it := range c.Items() {
		_, ok := c.ConceptByID(it.ConceptID)
		require.True(t, ok, "item %s references unknown concept %s", it.ID, it.ConceptID)
	}
}

func TestLoad_ConceptOrderFollowsCatalogSequence(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for i, concept := range c.Concepts() {
		require.Equal(t, i, concept.Order)
	}
}

func TestConceptByID(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	concept, ok := c.ConceptByID("light_reactions")
	require.True(t, ok)
	require.Equal(t, "Light Reactions", concept.Name)

	_, ok = c.ConceptByID("nope")
	require.False(t, ok)
}

func TestItemsByConcept_PreservesCatalogOrder(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	items := c.ItemsByConcept("light_reactions")
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		require.Equal(t, "light_reactions", items[i].ConceptID)
	}
	require.Equal(t, "lr-1", items[0].ID)

	require.Empty(t, c.ItemsByConcept("nope"))
}

func TestNextConcept(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	next, ok := c.NextConcept("light_reactions")
	require.True(t, ok)
	require.Equal(t, "calvin_cycle", next.ID)

	last := c.Concepts()[len(c.Concepts())-1]
	_, ok = c.NextConcept(last.ID)
	require.False(t, ok)

	_, ok = c.NextConcept("nope")
	require.False(t, ok)
}

func TestNew_DefaultsMissingDifficultyToOne(t *testing.T) {
	c := New(
		[]Concept{{ID: "c1", Name: "C1"}},
		[]Item{{ID: "i1", ConceptID: "c1", Type: TypeShort, Stem: "?", Answer: "x"}},
		Rules{},
	)

	it, ok := c.ItemByID("i1")
	require.True(t, ok)
	require.Equal(t, 1, it.Difficulty)
}

func TestSeedByID(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	seed, ok := c.SeedByID("struggling")
	require.True(t, ok)
	require.Equal(t, "guided", seed.Mode)
	require.Equal(t, "intense", seed.Intensity)
	require.NotEmpty(t, seed.OverrideMastery)

	_, ok = c.SeedByID("nope")
	require.False(t, ok)
}
