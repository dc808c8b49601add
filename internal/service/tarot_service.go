package service

import (
	"math/rand"

	"github.com/shinyyama/companion-backend/internal/tarot"
)

// defaultDrawCount matches the mobile client's four-card spread.
const defaultDrawCount = 4

type TarotService interface {
	Draw(count int) []tarot.Card
}

type tarotService struct{}

func NewTarotService() TarotService {
	return &tarotService{}
}

// Draw returns count distinct cards without replacement. A non-positive
// count falls back to the default spread; a count beyond the deck is
// clamped to the whole deck.
func (s *tarotService) Draw(count int) []tarot.Card {
	deck := tarot.Deck()
	if count <= 0 {
		count = defaultDrawCount
	}
	if count > len(deck) {
		count = len(deck)
	}
	cards := make([]tarot.Card, 0, count)
	for _, idx := range rand.Perm(len(deck))[:count] {
		cards = append(cards, deck[idx])
	}
	return cards
}
