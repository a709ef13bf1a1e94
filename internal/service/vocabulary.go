package service

import (
	"context"
	"errors"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/repository"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// VocabularyResult is the answer to a get-vocabulary request
type VocabularyResult struct {
	Success bool          `json:"success" yaml:"success"`
	Date    string        `json:"date,omitempty" yaml:"date,omitempty"`
	Data    []domain.Card `json:"data" yaml:"data"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// VocabularyService serves the deck to display
type VocabularyService struct {
	source repository.VocabularySource
	clock  clockwork.Clock
	logger *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(source repository.VocabularySource, clock clockwork.Clock, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		source: source,
		clock:  clock,
		logger: logger,
	}
}

// Deck loads the deck for the current local calendar date
func (s *VocabularyService) Deck(ctx context.Context) (domain.Deck, error) {
	return s.source.Load(ctx, s.clock.Now())
}

// GetVocabulary loads the current deck and converts failures into a result
func (s *VocabularyService) GetVocabulary(ctx context.Context) VocabularyResult {
	deck, err := s.Deck(ctx)
	if err != nil {
		s.logger.Warn("Failed to load vocabulary", zap.Error(err))
		return VocabularyResult{
			Success: false,
			Data:    nil,
			Error:   errorMessage(err),
		}
	}

	s.logger.Info("Vocabulary loaded",
		zap.String("date", deck.Date),
		zap.Int("cards", deck.Len()),
	)

	return VocabularyResult{
		Success: true,
		Date:    deck.Date,
		Data:    deck.Cards,
	}
}

// errorMessage maps load errors to user-facing text
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		return "Vocabulary file not found. Open english_vocab_app to generate shared_preferences.json."
	case errors.Is(err, domain.ErrNoDataFound):
		return "No vocabulary data found in file. Open english_vocab_app to generate today's list."
	case errors.Is(err, domain.ErrParse):
		return "Vocabulary data is malformed. Open english_vocab_app to regenerate it."
	default:
		return "Could not read vocabulary. Open english_vocab_app to regenerate shared_preferences.json."
	}
}
