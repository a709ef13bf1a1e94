package testutil

import (
	"context"
	"sync"
	"time"

	"vocabwidget/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularySource is a mock for VocabularySource
type MockVocabularySource struct {
	mock.Mock
}

func (m *MockVocabularySource) Load(ctx context.Context, today time.Time) (domain.Deck, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.Deck), args.Error(1)
}

func (m *MockVocabularySource) Path() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockWindowStateStore is a mock for WindowStateStore
type MockWindowStateStore struct {
	mock.Mock
}

func (m *MockWindowStateStore) Load() (domain.WindowState, error) {
	args := m.Called()
	return args.Get(0).(domain.WindowState), args.Error(1)
}

func (m *MockWindowStateStore) Save(state domain.WindowState) error {
	args := m.Called(state)
	return args.Error(0)
}

// MockDisplayProvider is a mock for DisplayProvider
type MockDisplayProvider struct {
	mock.Mock
}

func (m *MockDisplayProvider) WorkAreas() ([]domain.Bounds, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bounds), args.Error(1)
}

// FakeWindowHost is an in-memory window that remembers what was applied
type FakeWindowHost struct {
	mu          sync.Mutex
	bounds      domain.Bounds
	minWidth    int
	minHeight   int
	alwaysOnTop bool
	quit        bool
}

// NewFakeWindowHost creates a host with the given initial bounds
func NewFakeWindowHost(bounds domain.Bounds) *FakeWindowHost {
	return &FakeWindowHost{bounds: bounds}
}

func (h *FakeWindowHost) Bounds() domain.Bounds {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds
}

func (h *FakeWindowHost) SetSize(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bounds.Width = max(width, h.minWidth)
	h.bounds.Height = max(height, h.minHeight)
}

func (h *FakeWindowHost) SetPosition(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bounds.X = x
	h.bounds.Y = y
}

func (h *FakeWindowHost) SetMinimumSize(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.minWidth = width
	h.minHeight = height
}

func (h *FakeWindowHost) SetAlwaysOnTop(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.alwaysOnTop = on
}

func (h *FakeWindowHost) Quit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quit = true
}

// Move simulates the user dragging or resizing the window
func (h *FakeWindowHost) Move(bounds domain.Bounds) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bounds = bounds
}

// MinimumSize returns the last applied minimum size
func (h *FakeWindowHost) MinimumSize() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.minWidth, h.minHeight
}

// AlwaysOnTop returns the last applied always-on-top flag
func (h *FakeWindowHost) AlwaysOnTop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.alwaysOnTop
}

// Quitted reports whether Quit was called
func (h *FakeWindowHost) Quitted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quit
}
