package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckIsWellFormed(t *testing.T) {
	cards := Deck()
	require.Equal(t, DeckSize(), len(cards))
	require.NotEmpty(t, cards)

	seen := make(map[string]bool)
	for _, c := range cards {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.NameEn)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Analysis)
		assert.NotEmpty(t, c.Affirmation)
		assert.NotEmpty(t, c.Keywords)
		assert.NotEmpty(t, c.Type)
		assert.False(t, seen[c.ID], "duplicate card id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestDeckReturnsCopy(t *testing.T) {
	a := Deck()
	a[0].Name = "mutated"
	b := Deck()
	assert.NotEqual(t, "mutated", b[0].Name)
}
