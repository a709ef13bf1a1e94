package gui

import (
	"runtime"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"vocabwidget/internal/domain"
)

// AppTitle is the window title where the driver shows one
const AppTitle = "Vocabulary Widget"

// NewWindow creates a borderless window when the driver supports it
func NewWindow(app fyne.App) fyne.Window {
	if drv, ok := app.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return app.NewWindow(AppTitle)
}

// Host adapts a Fyne window to the window service.
// Fyne cannot move windows or keep them on top, so position and pinned
// state are tracked here and reported as bounds.
type Host struct {
	app     fyne.App
	window  fyne.Window
	logger  *zap.Logger
	minRect *canvas.Rectangle

	mu              sync.Mutex
	bounds          domain.Bounds
	minWidth        int
	minHeight       int
	alwaysOnTop     bool
	onBoundsChanged func()
	reported        map[string]bool
}

// NewHost wraps window
func NewHost(app fyne.App, window fyne.Window, logger *zap.Logger) *Host {
	minRect := canvas.NewRectangle(nil)
	return &Host{
		app:      app,
		window:   window,
		logger:   logger,
		minRect:  minRect,
		reported: make(map[string]bool),
	}
}

// SetContent places content in the window behind the minimum-size guard
func (h *Host) SetContent(content fyne.CanvasObject) {
	h.window.SetPadded(false)
	h.window.SetContent(container.New(&trackingLayout{onResize: h.resized}, h.minRect, content))
}

// OnBoundsChanged registers fn to run after every resize
func (h *Host) OnBoundsChanged(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBoundsChanged = fn
}

// InstallCloseIntercept routes the window close button. On macOS the window
// hides and returns with the app; elsewhere closing quits through onQuit.
func (h *Host) InstallCloseIntercept(onQuit func()) {
	h.window.SetCloseIntercept(closeIntercept(runtime.GOOS, h.window, onQuit))
	if runtime.GOOS == "darwin" {
		h.app.Lifecycle().SetOnEnteredForeground(func() {
			h.window.Show()
		})
	}
}

func closeIntercept(goos string, window fyne.Window, onQuit func()) func() {
	return func() {
		if goos == "darwin" {
			window.Hide()
			return
		}
		go onQuit()
	}
}

// Bounds returns the last known window bounds
func (h *Host) Bounds() domain.Bounds {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds
}

// SetSize resizes the window, never below the minimum size
func (h *Host) SetSize(width, height int) {
	h.mu.Lock()
	width = max(width, h.minWidth)
	height = max(height, h.minHeight)
	h.bounds.Width = width
	h.bounds.Height = height
	h.mu.Unlock()

	fyne.Do(func() {
		h.window.Resize(fyne.NewSize(float32(width), float32(height)))
	})
}

// SetPosition records the requested position
func (h *Host) SetPosition(x, y int) {
	h.mu.Lock()
	h.bounds.X = x
	h.bounds.Y = y
	h.mu.Unlock()

	h.unsupported("position", zap.Int("x", x), zap.Int("y", y))
}

// SetMinimumSize sets the smallest size the content accepts
func (h *Host) SetMinimumSize(width, height int) {
	h.mu.Lock()
	h.minWidth = width
	h.minHeight = height
	h.mu.Unlock()

	fyne.Do(func() {
		h.minRect.SetMinSize(fyne.NewSize(float32(width), float32(height)))
		h.minRect.Refresh()
	})
}

// SetAlwaysOnTop records the requested pinned state
func (h *Host) SetAlwaysOnTop(on bool) {
	h.mu.Lock()
	h.alwaysOnTop = on
	h.mu.Unlock()

	h.unsupported("always_on_top", zap.Bool("always_on_top", on))
}

// AlwaysOnTop returns the last requested pinned state
func (h *Host) AlwaysOnTop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.alwaysOnTop
}

// Quit stops the application
func (h *Host) Quit() {
	fyne.Do(func() {
		h.app.Quit()
	})
}

// unsupported logs once per feature that the driver cannot apply it
func (h *Host) unsupported(feature string, fields ...zap.Field) {
	h.mu.Lock()
	seen := h.reported[feature]
	h.reported[feature] = true
	h.mu.Unlock()

	if seen {
		h.logger.Debug("Window request recorded", append(fields, zap.String("feature", feature))...)
		return
	}
	h.logger.Info("Window request not supported by driver, recorded only",
		append(fields, zap.String("feature", feature))...)
}

// resized is called from layout with the new content size
func (h *Host) resized(size fyne.Size) {
	width, height := int(size.Width), int(size.Height)

	h.mu.Lock()
	if width == h.bounds.Width && height == h.bounds.Height {
		h.mu.Unlock()
		return
	}
	h.bounds.Width = width
	h.bounds.Height = height
	fn := h.onBoundsChanged
	h.mu.Unlock()

	if fn != nil {
		go fn()
	}
}

// trackingLayout stacks its objects and reports every size it lays out
type trackingLayout struct {
	onResize func(fyne.Size)
}

func (l *trackingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	l.onResize(size)
}

func (l *trackingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		size = size.Max(o.MinSize())
	}
	return size
}
