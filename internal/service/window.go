package service

import (
	"errors"
	"fmt"
	"sync"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/repository"

	"go.uber.org/zap"
)

// Geometry constants of the widget
const (
	DockMargin = 16

	// CompactWidthLimit is the widest restored width accepted at startup
	CompactWidthLimit = 320
	CompactWidth      = 300

	FallbackWidth  = 350
	FallbackHeight = 200

	MinimizedSize = 60

	NormalMinWidth  = 240
	NormalMinHeight = 150
)

// WindowHost is the toolkit window the widget lives in
type WindowHost interface {
	Bounds() domain.Bounds
	SetSize(width, height int)
	SetPosition(x, y int)
	SetMinimumSize(width, height int)
	SetAlwaysOnTop(on bool)
	Quit()
}

// DisplayProvider reports usable work areas, primary display first
type DisplayProvider interface {
	WorkAreas() ([]domain.Bounds, error)
}

// StaticDisplays is a DisplayProvider over a fixed list of work areas
type StaticDisplays []domain.Bounds

// WorkAreas returns the configured work areas
func (d StaticDisplays) WorkAreas() ([]domain.Bounds, error) {
	if len(d) == 0 {
		return nil, errors.New("no displays configured")
	}
	return d, nil
}

// WindowService owns window placement and persisted geometry
type WindowService struct {
	store    repository.WindowStateStore
	displays DisplayProvider
	logger   *zap.Logger

	mu    sync.Mutex
	state domain.WindowState
	host  WindowHost
}

// NewWindowService creates a new window service
func NewWindowService(store repository.WindowStateStore, displays DisplayProvider, logger *zap.Logger) *WindowService {
	return &WindowService{
		store:    store,
		displays: displays,
		logger:   logger,
		state:    domain.DefaultWindowState(),
	}
}

// Prepare loads the persisted state and docks it to the bottom-right of the
// primary work area. The result is the geometry to create the window with.
func (s *WindowService) Prepare() domain.WindowState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		s.logger.Warn("Failed to load window state, using defaults", zap.Error(err))
	}

	if state.IsMinimized {
		s.logger.Info("Window was saved minimized, starting in normal mode")
		state.IsMinimized = false
	}

	// Stale oversized state from older layouts
	if state.Width > CompactWidthLimit {
		state.Width = CompactWidth
		state.NormalWidth = CompactWidth
	}

	// The window is created at the size it was docked with
	if state.Width == 0 {
		state.Width = FallbackWidth
	}
	if state.Height == 0 {
		state.Height = FallbackHeight
	}

	if primary, err := s.primaryWorkArea(); err != nil {
		s.logger.Warn("Display information unavailable, keeping saved position", zap.Error(err))
	} else {
		state.X, state.Y = domain.DockBottomRight(primary, state.Width, state.Height, DockMargin)
	}

	s.state = state
	return state
}

// Attach applies the prepared geometry to the toolkit window
func (s *WindowService) Attach(host WindowHost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.host = host
	host.SetMinimumSize(NormalMinWidth, NormalMinHeight)
	host.SetSize(s.state.Width, s.state.Height)
	host.SetPosition(s.state.X, s.state.Y)
	host.SetAlwaysOnTop(s.state.AlwaysOnTop)
}

// State returns a snapshot of the window state
func (s *WindowService) State() domain.WindowState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// BoundsChanged records a move or resize of the window
func (s *WindowService) BoundsChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.host == nil {
		return
	}
	bounds := s.host.Bounds()

	if s.state.IsMinimized {
		// Collapsed geometry is never persisted
		s.state.X = bounds.X
		s.state.Y = bounds.Y
		return
	}

	s.captureNormalLocked(bounds)
	s.saveLocked()
}

// ToggleAlwaysOnTop flips the pinned state and returns the new value
func (s *WindowService) ToggleAlwaysOnTop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.host == nil {
		return false
	}

	s.state.AlwaysOnTop = !s.state.AlwaysOnTop
	s.host.SetAlwaysOnTop(s.state.AlwaysOnTop)
	s.saveLocked()

	s.logger.Info("Always on top toggled", zap.Bool("always_on_top", s.state.AlwaysOnTop))
	return s.state.AlwaysOnTop
}

// ToggleMinimize collapses the widget into a corner square or restores it,
// and returns the new minimized state
func (s *WindowService) ToggleMinimize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.host == nil {
		return false
	}

	if !s.state.IsMinimized {
		s.minimizeLocked()
	} else {
		s.restoreLocked()
	}

	s.saveLocked()
	return s.state.IsMinimized
}

// Close quits the application
func (s *WindowService) Close() {
	s.mu.Lock()
	host := s.host
	s.mu.Unlock()

	s.logger.Info("Close requested")
	if host != nil {
		host.Quit()
	}
}

func (s *WindowService) minimizeLocked() {
	bounds := s.host.Bounds()
	s.state.NormalWidth = bounds.Width
	s.state.NormalHeight = bounds.Height
	s.state.NormalX = bounds.X
	s.state.NormalY = bounds.Y

	s.host.SetMinimumSize(MinimizedSize, MinimizedSize)
	s.host.SetSize(MinimizedSize, MinimizedSize)

	x, y := bounds.X, bounds.Y
	if area, err := s.workAreaMatching(bounds); err != nil {
		s.logger.Warn("Display information unavailable, minimizing in place", zap.Error(err))
	} else {
		x, y = domain.DockBottomRight(area, MinimizedSize, MinimizedSize, DockMargin)
	}
	s.host.SetPosition(x, y)

	s.state.X, s.state.Y = x, y
	s.state.IsMinimized = true
	s.logger.Debug("Window minimized", zap.Int("x", x), zap.Int("y", y))
}

func (s *WindowService) restoreLocked() {
	width := s.state.NormalWidth
	if width == 0 {
		width = FallbackWidth
	}
	height := s.state.NormalHeight
	if height == 0 {
		height = FallbackHeight
	}

	s.host.SetMinimumSize(NormalMinWidth, NormalMinHeight)
	s.host.SetSize(width, height)
	s.host.SetPosition(s.state.NormalX, s.state.NormalY)

	s.state.IsMinimized = false
	s.captureNormalLocked(s.host.Bounds())
	s.logger.Debug("Window restored", zap.Int("width", width), zap.Int("height", height))
}

// captureNormalLocked copies normal-mode bounds into both geometry sets
func (s *WindowService) captureNormalLocked(bounds domain.Bounds) {
	s.state.X = bounds.X
	s.state.Y = bounds.Y
	s.state.Width = bounds.Width
	s.state.Height = bounds.Height
	s.state.NormalWidth = bounds.Width
	s.state.NormalHeight = bounds.Height
	s.state.NormalX = bounds.X
	s.state.NormalY = bounds.Y
}

// saveLocked persists the state unless minimized
func (s *WindowService) saveLocked() {
	if s.state.IsMinimized {
		return
	}
	if err := s.store.Save(s.state); err != nil {
		s.logger.Error("Failed to save window state", zap.Error(err))
	}
}

func (s *WindowService) primaryWorkArea() (domain.Bounds, error) {
	areas, err := s.displays.WorkAreas()
	if err != nil {
		return domain.Bounds{}, err
	}
	if len(areas) == 0 {
		return domain.Bounds{}, fmt.Errorf("no displays reported")
	}
	return areas[0], nil
}

func (s *WindowService) workAreaMatching(bounds domain.Bounds) (domain.Bounds, error) {
	areas, err := s.displays.WorkAreas()
	if err != nil {
		return domain.Bounds{}, err
	}
	area, ok := domain.MatchingWorkArea(areas, bounds)
	if !ok {
		return domain.Bounds{}, fmt.Errorf("no displays reported")
	}
	return area, nil
}
