package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vocabwidget/internal/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// KeyPrefix is the shared_preferences key prefix of a day's vocabulary list
const KeyPrefix = "flutter.vocabulary_data_"

const dateLayout = "2006-01-02"

// DefaultVocabularyPath returns where english_vocab_app keeps its preferences
func DefaultVocabularyPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "com.example", "english_vocab_app", "shared_preferences.json")
}

// PathResolver picks the vocabulary file, preferring an existing override
type PathResolver struct {
	override    string
	defaultPath string
	logger      *zap.Logger
}

// NewPathResolver creates a new path resolver
func NewPathResolver(override, defaultPath string, logger *zap.Logger) *PathResolver {
	return &PathResolver{
		override:    override,
		defaultPath: defaultPath,
		logger:      logger,
	}
}

// Resolve returns the path to read. It is evaluated on every call so a
// file created after startup is picked up.
func (r *PathResolver) Resolve() (string, error) {
	if r.override != "" {
		if fileExists(r.override) {
			return r.override, nil
		}
		r.logger.Info("Configured vocabulary path does not exist, using default",
			zap.String("override", r.override),
			zap.String("default", r.defaultPath),
		)
	}

	if fileExists(r.defaultPath) {
		return r.defaultPath, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, r.defaultPath)
}

// Candidate returns the path that would be watched, whether or not it exists
func (r *PathResolver) Candidate() string {
	if r.override != "" && fileExists(r.override) {
		return r.override
	}
	return r.defaultPath
}

// PrefsSource implements repository.VocabularySource over a
// shared_preferences.json file
type PrefsSource struct {
	resolver *PathResolver
}

// NewPrefsSource creates a new preferences-backed vocabulary source
func NewPrefsSource(resolver *PathResolver) *PrefsSource {
	return &PrefsSource{resolver: resolver}
}

// Path returns the currently resolved vocabulary file
func (s *PrefsSource) Path() (string, error) {
	return s.resolver.Resolve()
}

// Load returns today's deck, or the most recent earlier one
func (s *PrefsSource) Load(ctx context.Context, today time.Time) (domain.Deck, error) {
	path, err := s.resolver.Resolve()
	if err != nil {
		return domain.Deck{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Deck{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Deck{}, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return domain.Deck{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParsePrefs(data, today)
}

// ParsePrefs selects and decodes a deck from raw shared_preferences content
func ParsePrefs(data []byte, today time.Time) (domain.Deck, error) {
	var prefs map[string]json.RawMessage
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	key, ok := selectKey(prefs, today)
	if !ok {
		return domain.Deck{}, domain.ErrNoDataFound
	}

	var encoded string
	if err := json.Unmarshal(prefs[key], &encoded); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %s is not a string: %v", domain.ErrParse, key, err)
	}

	var cards []domain.Card
	if err := json.Unmarshal([]byte(encoded), &cards); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %s: %v", domain.ErrParse, key, err)
	}

	return domain.Deck{
		Date:  strings.TrimPrefix(key, KeyPrefix),
		Cards: cards,
	}, nil
}

// selectKey prefers today's key, then the latest earlier day, then the
// latest day overall
func selectKey(prefs map[string]json.RawMessage, today time.Time) (string, bool) {
	todayKey := KeyPrefix + today.Format(dateLayout)
	if value, ok := prefs[todayKey]; ok && !isBlank(value) {
		return todayKey, true
	}

	keys := lo.Filter(lo.Keys(prefs), func(key string, _ int) bool {
		return key != todayKey && isDatedKey(key)
	})
	if len(keys) == 0 {
		return "", false
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	if earlier, ok := lo.Find(keys, func(key string) bool { return key < todayKey }); ok {
		return earlier, true
	}
	return keys[0], true
}

func isDatedKey(key string) bool {
	suffix, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return false
	}
	_, err := time.Parse(dateLayout, suffix)
	return err == nil
}

// isBlank reports values the producer uses for "nothing stored"
func isBlank(value json.RawMessage) bool {
	v := strings.TrimSpace(string(value))
	return v == "" || v == "null" || v == `""`
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
