package config

import (
	"fmt"
	"os"
	"strings"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/repository/filestore"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// VocabPath is the optional vocabulary file override
	VocabPath string
	// DefaultVocabPath is where the producer app writes by default
	DefaultVocabPath string
	StateFile        string
	WorkAreas        []domain.Bounds
	Development      bool
}

const defaultWorkAreas = "0,0,1920,1040"

// Load reads configuration from environment variables. The given .env files
// are loaded first; variables already set in the environment are kept.
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are fine
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	workAreas, err := ParseWorkAreas(getEnv("WIDGET_WORK_AREAS", defaultWorkAreas))
	if err != nil {
		return nil, fmt.Errorf("WIDGET_WORK_AREAS: %w", err)
	}

	cfg := &Config{
		VocabPath:        vocabOverride(),
		DefaultVocabPath: filestore.DefaultVocabularyPath(),
		StateFile:        getEnv("WIDGET_STATE_FILE", filestore.DefaultStatePath()),
		WorkAreas:        workAreas,
		Development:      strings.EqualFold(os.Getenv("WIDGET_ENV"), "development"),
	}

	return cfg, nil
}

// vocabOverride returns VOCAB_PATH, or VOCAB_JSON when VOCAB_PATH is unset
func vocabOverride() string {
	if path := os.Getenv("VOCAB_PATH"); path != "" {
		return path
	}
	return os.Getenv("VOCAB_JSON")
}

// ParseWorkAreas parses "x,y,w,h;x,y,w,h". The first area is the primary display.
func ParseWorkAreas(s string) ([]domain.Bounds, error) {
	var areas []domain.Bounds
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		area, err := domain.ParseBounds(part)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("at least one work area is required")
	}
	return areas, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
