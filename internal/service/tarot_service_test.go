package service

import (
	"testing"

	"github.com/shinyyama/companion-backend/internal/tarot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawReturnsDistinctCards(t *testing.T) {
	svc := NewTarotService()

	cards := svc.Draw(5)
	require.Len(t, cards, 5)

	seen := make(map[string]bool)
	for _, c := range cards {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.False(t, seen[c.ID], "card %s drawn twice", c.ID)
		seen[c.ID] = true
	}
}

func TestDrawDefaultsAndClamps(t *testing.T) {
	svc := NewTarotService()

	assert.Len(t, svc.Draw(0), defaultDrawCount)
	assert.Len(t, svc.Draw(-3), defaultDrawCount)
	assert.Len(t, svc.Draw(tarot.DeckSize()+100), tarot.DeckSize())
	assert.Len(t, svc.Draw(1), 1)
}
