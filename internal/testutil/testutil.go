package testutil

import (
	"vocabwidget/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCard creates a test card
func NewTestCard(word string) domain.Card {
	return domain.Card{
		Word:    word,
		Meaning: "meaning of " + word,
	}
}

// NewTestDeck creates a deck with one card per word
func NewTestDeck(words ...string) domain.Deck {
	cards := make([]domain.Card, 0, len(words))
	for _, w := range words {
		cards = append(cards, NewTestCard(w))
	}
	return domain.Deck{
		Date:  "2024-01-05",
		Cards: cards,
	}
}
