package gui

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/service"
	"vocabwidget/internal/testutil"
)

var _ service.WindowHost = (*Host)(nil)

func newTestHost(t *testing.T) (*Host, fyne.Window) {
	t.Helper()
	app := test.NewTempApp(t)
	window := app.NewWindow(AppTitle)
	t.Cleanup(window.Close)
	host := NewHost(app, window, testutil.NewTestLogger())
	host.SetContent(widget.NewLabel("content"))
	return host, window
}

func TestHost_SetSizeRespectsMinimum(t *testing.T) {
	host, _ := newTestHost(t)

	host.SetMinimumSize(service.NormalMinWidth, service.NormalMinHeight)
	host.SetSize(100, 100)

	b := host.Bounds()
	assert.Equal(t, service.NormalMinWidth, b.Width)
	assert.Equal(t, service.NormalMinHeight, b.Height)
	assert.Equal(t, float32(service.NormalMinWidth), host.minRect.MinSize().Width)
}

func TestHost_TracksPositionAndPin(t *testing.T) {
	host, _ := newTestHost(t)

	host.SetPosition(1604, 824)
	host.SetPosition(10, 20)
	host.SetAlwaysOnTop(true)

	assert.Equal(t, 10, host.Bounds().X)
	assert.Equal(t, 20, host.Bounds().Y)
	assert.True(t, host.AlwaysOnTop())
}

func TestHost_ResizeNotifies(t *testing.T) {
	host, _ := newTestHost(t)
	var calls atomic.Int32
	host.OnBoundsChanged(func() { calls.Add(1) })

	host.resized(fyne.NewSize(320, 180))
	host.resized(fyne.NewSize(320, 180))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, domain.Bounds{Width: 320, Height: 180}, host.Bounds())
}

func TestHost_MinimizeShrinksToSquare(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow(AppTitle)
	t.Cleanup(window.Close)
	host := NewHost(app, window, testutil.NewTestLogger())
	view := NewView(Actions{})
	host.SetContent(view.GetContainer())
	host.SetMinimumSize(service.NormalMinWidth, service.NormalMinHeight)
	host.SetSize(300, 200)
	view.ShowCard(domain.Card{Word: "ephemeral", Meaning: "lasting a very short time"})

	view.SetMinimized(true)
	host.SetMinimumSize(service.MinimizedSize, service.MinimizedSize)
	host.SetSize(service.MinimizedSize, service.MinimizedSize)

	square := fyne.NewSize(service.MinimizedSize, service.MinimizedSize)
	minSize := window.Content().MinSize()
	assert.LessOrEqual(t, minSize.Width, square.Width)
	assert.LessOrEqual(t, minSize.Height, square.Height)
	assert.Equal(t, square, window.Canvas().Size())
	assert.Equal(t, service.MinimizedSize, host.Bounds().Width)
	assert.Equal(t, service.MinimizedSize, host.Bounds().Height)
}

func TestCloseIntercept(t *testing.T) {
	tests := []struct {
		goos       string
		expectQuit bool
	}{
		{goos: "darwin", expectQuit: false},
		{goos: "linux", expectQuit: true},
		{goos: "windows", expectQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			app := test.NewTempApp(t)
			window := app.NewWindow(AppTitle)
			window.Show()
			var quits atomic.Int32

			closeIntercept(tt.goos, window, func() { quits.Add(1) })()

			if tt.expectQuit {
				assert.Eventually(t, func() bool { return quits.Load() == 1 }, time.Second, 5*time.Millisecond)
			} else {
				assert.Never(t, func() bool { return quits.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
			}
		})
	}
}
