package repository

import (
	"context"
	"time"

	"vocabwidget/internal/domain"
)

// VocabularySource defines read access to the producer app's vocabulary data
type VocabularySource interface {
	Load(ctx context.Context, today time.Time) (domain.Deck, error)
	Path() (string, error)
}

// WindowStateStore defines persistence of the widget geometry
type WindowStateStore interface {
	Load() (domain.WindowState, error)
	Save(state domain.WindowState) error
}
