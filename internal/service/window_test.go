package service

import (
	"errors"
	"testing"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var primaryArea = domain.Bounds{X: 0, Y: 0, Width: 1920, Height: 1040}

func newWindowService(t *testing.T, saved domain.WindowState, areas ...domain.Bounds) (*WindowService, *testutil.MockWindowStateStore) {
	t.Helper()
	store := new(testutil.MockWindowStateStore)
	store.On("Load").Return(saved, nil)
	store.On("Save", mock.Anything).Return(nil)

	if len(areas) == 0 {
		areas = []domain.Bounds{primaryArea}
	}
	return NewWindowService(store, StaticDisplays(areas), testutil.NewTestLogger()), store
}

func TestWindowService_Prepare(t *testing.T) {
	tests := []struct {
		name     string
		saved    domain.WindowState
		expected func(domain.WindowState) domain.WindowState
	}{
		{
			name:  "defaults dock bottom right",
			saved: domain.DefaultWindowState(),
			expected: func(s domain.WindowState) domain.WindowState {
				s.X, s.Y = 1604, 824
				return s
			},
		},
		{
			name: "oversized width compacted",
			saved: func() domain.WindowState {
				s := domain.DefaultWindowState()
				s.Width, s.NormalWidth = 500, 500
				return s
			}(),
			expected: func(s domain.WindowState) domain.WindowState {
				s.Width, s.NormalWidth = 300, 300
				s.X, s.Y = 1604, 824
				return s
			},
		},
		{
			name: "width at limit kept",
			saved: func() domain.WindowState {
				s := domain.DefaultWindowState()
				s.Width = 320
				return s
			}(),
			expected: func(s domain.WindowState) domain.WindowState {
				s.X, s.Y = 1920-320-16, 824
				return s
			},
		},
		{
			name: "saved minimized starts normal",
			saved: func() domain.WindowState {
				s := domain.DefaultWindowState()
				s.IsMinimized = true
				return s
			}(),
			expected: func(s domain.WindowState) domain.WindowState {
				s.IsMinimized = false
				s.X, s.Y = 1604, 824
				return s
			},
		},
		{
			name: "zero size docks with fallback size",
			saved: func() domain.WindowState {
				s := domain.DefaultWindowState()
				s.Width, s.Height = 0, 0
				return s
			}(),
			expected: func(s domain.WindowState) domain.WindowState {
				s.Width, s.Height = FallbackWidth, FallbackHeight
				s.X, s.Y = 1920-350-16, 1040-200-16
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newWindowService(t, tt.saved)

			state := service.Prepare()

			assert.Equal(t, tt.expected(tt.saved), state)
			assert.Equal(t, state, service.State())
			store.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestWindowService_PrepareLoadFailureUsesReturnedDefaults(t *testing.T) {
	store := new(testutil.MockWindowStateStore)
	store.On("Load").Return(domain.DefaultWindowState(), errors.New("corrupt"))
	service := NewWindowService(store, StaticDisplays{primaryArea}, testutil.NewTestLogger())

	state := service.Prepare()

	assert.Equal(t, 300, state.Width)
	assert.Equal(t, 200, state.Height)
	assert.True(t, state.AlwaysOnTop)
	assert.Equal(t, 1604, state.X)
}

func TestWindowService_PrepareWithoutDisplaysKeepsPosition(t *testing.T) {
	store := new(testutil.MockWindowStateStore)
	store.On("Load").Return(domain.DefaultWindowState(), nil)
	displays := new(testutil.MockDisplayProvider)
	displays.On("WorkAreas").Return(nil, errors.New("no displays"))
	service := NewWindowService(store, displays, testutil.NewTestLogger())

	state := service.Prepare()

	assert.Equal(t, 100, state.X)
	assert.Equal(t, 100, state.Y)
	displays.AssertExpectations(t)
}

func TestWindowService_Attach(t *testing.T) {
	service, _ := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})

	service.Attach(host)

	assert.Equal(t, domain.Bounds{X: 1604, Y: 824, Width: 300, Height: 200}, host.Bounds())
	minW, minH := host.MinimumSize()
	assert.Equal(t, NormalMinWidth, minW)
	assert.Equal(t, NormalMinHeight, minH)
	assert.True(t, host.AlwaysOnTop())
}

func TestWindowService_OperationsWithoutHost(t *testing.T) {
	service, store := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()

	assert.False(t, service.ToggleAlwaysOnTop())
	assert.False(t, service.ToggleMinimize())
	assert.NotPanics(t, service.BoundsChanged)
	assert.NotPanics(t, service.Close)
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestWindowService_ToggleAlwaysOnTop(t *testing.T) {
	service, store := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)

	assert.False(t, service.ToggleAlwaysOnTop())
	assert.False(t, host.AlwaysOnTop())
	assert.False(t, service.State().AlwaysOnTop)

	assert.True(t, service.ToggleAlwaysOnTop())
	assert.True(t, host.AlwaysOnTop())

	store.AssertNumberOfCalls(t, "Save", 2)
}

func TestWindowService_MinimizeAndRestore(t *testing.T) {
	service, store := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)
	host.Move(domain.Bounds{X: 800, Y: 500, Width: 280, Height: 180})
	service.BoundsChanged()
	store.AssertNumberOfCalls(t, "Save", 1)

	assert.True(t, service.ToggleMinimize())

	assert.Equal(t, domain.Bounds{X: 1844, Y: 964, Width: 60, Height: 60}, host.Bounds())
	state := service.State()
	assert.True(t, state.IsMinimized)
	assert.Equal(t, 280, state.NormalWidth)
	assert.Equal(t, 180, state.NormalHeight)
	assert.Equal(t, 800, state.NormalX)
	assert.Equal(t, 500, state.NormalY)
	minW, minH := host.MinimumSize()
	assert.Equal(t, MinimizedSize, minW)
	assert.Equal(t, MinimizedSize, minH)
	store.AssertNumberOfCalls(t, "Save", 1)

	// Moving the collapsed square is never persisted
	host.Move(domain.Bounds{X: 10, Y: 10, Width: 60, Height: 60})
	service.BoundsChanged()
	store.AssertNumberOfCalls(t, "Save", 1)

	assert.False(t, service.ToggleMinimize())

	assert.Equal(t, domain.Bounds{X: 800, Y: 500, Width: 280, Height: 180}, host.Bounds())
	minW, minH = host.MinimumSize()
	assert.Equal(t, NormalMinWidth, minW)
	assert.Equal(t, NormalMinHeight, minH)
	require.Len(t, store.Calls, 3)
	saved := store.Calls[2].Arguments.Get(0).(domain.WindowState)
	assert.False(t, saved.IsMinimized)
	assert.Equal(t, 280, saved.Width)
	assert.Equal(t, 800, saved.X)
}

func TestWindowService_ZeroHeightAttachesDockedSize(t *testing.T) {
	saved := domain.DefaultWindowState()
	saved.Height = 0
	service, _ := newWindowService(t, saved)
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})

	service.Attach(host)

	b := host.Bounds()
	assert.Equal(t, FallbackHeight, b.Height)
	assert.Equal(t, primaryArea.Height-DockMargin, b.Y+b.Height)
	assert.Equal(t, primaryArea.Width-DockMargin, b.X+b.Width)
}

func TestWindowService_MinimizeAndRestoreAtOrigin(t *testing.T) {
	service, store := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)
	host.Move(domain.Bounds{X: 0, Y: 0, Width: 300, Height: 200})
	service.BoundsChanged()

	assert.True(t, service.ToggleMinimize())
	assert.False(t, service.ToggleMinimize())

	assert.Equal(t, domain.Bounds{X: 0, Y: 0, Width: 300, Height: 200}, host.Bounds())
	state := service.State()
	assert.Equal(t, 0, state.X)
	assert.Equal(t, 0, state.Y)
	assert.Equal(t, 0, state.NormalX)
	assert.Equal(t, 0, state.NormalY)
	saved := store.Calls[len(store.Calls)-1].Arguments.Get(0).(domain.WindowState)
	assert.Equal(t, 0, saved.X)
	assert.Equal(t, 0, saved.Y)
}

func TestWindowService_MinimizeDocksToOverlappingDisplay(t *testing.T) {
	secondary := domain.Bounds{X: 1920, Y: 0, Width: 2560, Height: 1400}
	service, _ := newWindowService(t, domain.DefaultWindowState(), primaryArea, secondary)
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)
	host.Move(domain.Bounds{X: 2500, Y: 300, Width: 300, Height: 200})

	service.ToggleMinimize()

	assert.Equal(t, domain.Bounds{X: 1920 + 2560 - 76, Y: 1400 - 76, Width: 60, Height: 60}, host.Bounds())
}

func TestWindowService_RestoreWithoutNormalGeometryUsesFallback(t *testing.T) {
	service, _ := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)

	service.mu.Lock()
	service.state.IsMinimized = true
	service.state.NormalWidth, service.state.NormalHeight = 0, 0
	service.state.NormalX, service.state.NormalY = 0, 0
	service.mu.Unlock()

	assert.False(t, service.ToggleMinimize())
	b := host.Bounds()
	assert.Equal(t, FallbackWidth, b.Width)
	assert.Equal(t, FallbackHeight, b.Height)
}

func TestWindowService_SaveFailureIsLogged(t *testing.T) {
	store := new(testutil.MockWindowStateStore)
	store.On("Load").Return(domain.DefaultWindowState(), nil)
	store.On("Save", mock.Anything).Return(domain.ErrPersistence)
	service := NewWindowService(store, StaticDisplays{primaryArea}, testutil.NewTestLogger())
	service.Prepare()
	service.Attach(testutil.NewFakeWindowHost(domain.Bounds{}))

	assert.NotPanics(t, func() { service.ToggleAlwaysOnTop() })
	assert.False(t, service.State().AlwaysOnTop)
}

func TestWindowService_Close(t *testing.T) {
	service, _ := newWindowService(t, domain.DefaultWindowState())
	service.Prepare()
	host := testutil.NewFakeWindowHost(domain.Bounds{})
	service.Attach(host)

	service.Close()

	assert.True(t, host.Quitted())
}

func TestStaticDisplays(t *testing.T) {
	_, err := StaticDisplays(nil).WorkAreas()
	assert.Error(t, err)

	areas, err := StaticDisplays{primaryArea}.WorkAreas()
	assert.NoError(t, err)
	assert.Equal(t, []domain.Bounds{primaryArea}, areas)
}
