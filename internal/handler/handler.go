package handler

import (
	"context"
	"sync"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/rotation"
	"vocabwidget/internal/service"

	"go.uber.org/zap"
)

// EmptyVocabularyMessage is shown when the selected day has no cards
const EmptyVocabularyMessage = "No vocabulary yet. Open english_vocab_app to generate today's list."

// View renders the widget
type View interface {
	rotation.Display
	ShowLoading()
	ShowError(message string)
	SetPaused(paused bool)
	SetPinned(pinned bool)
	SetMinimized(minimized bool)
}

// Vocabulary provides the deck to display
type Vocabulary interface {
	GetVocabulary(ctx context.Context) service.VocabularyResult
}

// Window controls the widget window
type Window interface {
	State() domain.WindowState
	ToggleAlwaysOnTop() bool
	ToggleMinimize() bool
	Close()
}

// Rotation cycles cards on a timer
type Rotation interface {
	Load(deck domain.Deck)
	Next()
	Previous()
	TogglePause() bool
	Stop()
}

// Controller handles all widget interactions
type Controller struct {
	vocabulary Vocabulary
	window     Window
	rotation   Rotation
	view       View
	logger     *zap.Logger

	// serializes reloads from the watcher and the UI
	reloadMu sync.Mutex
}

// NewController creates a new controller instance
func NewController(
	vocabulary Vocabulary,
	window Window,
	rotation Rotation,
	view View,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		vocabulary: vocabulary,
		window:     window,
		rotation:   rotation,
		view:       view,
		logger:     logger,
	}
}

// Start syncs the controls with the window and loads the first deck
func (c *Controller) Start(ctx context.Context) {
	state := c.window.State()
	c.view.SetPinned(state.AlwaysOnTop)
	c.view.SetMinimized(state.IsMinimized)
	c.Reload(ctx)
}

// Reload fetches the vocabulary and shows its first card, or the error view
func (c *Controller) Reload(ctx context.Context) {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	c.view.ShowLoading()

	result := c.vocabulary.GetVocabulary(ctx)
	if !result.Success {
		c.logger.Warn("Vocabulary unavailable", zap.String("error", result.Error))
		c.rotation.Load(domain.Deck{})
		c.view.ShowError(result.Error)
		return
	}

	if len(result.Data) == 0 {
		c.logger.Info("Vocabulary is empty", zap.String("date", result.Date))
		c.rotation.Load(domain.Deck{})
		c.view.ShowError(EmptyVocabularyMessage)
		return
	}

	c.rotation.Load(domain.Deck{Date: result.Date, Cards: result.Data})
}

// VocabularyUpdated reacts to a change of the vocabulary file
func (c *Controller) VocabularyUpdated(ctx context.Context) {
	c.logger.Info("Vocabulary file changed, reloading")
	c.Reload(ctx)
}

// Next shows the following card
func (c *Controller) Next() {
	c.rotation.Next()
}

// Previous shows the preceding card
func (c *Controller) Previous() {
	c.rotation.Previous()
}

// TogglePause pauses or resumes the rotation
func (c *Controller) TogglePause() {
	paused := c.rotation.TogglePause()
	c.view.SetPaused(paused)
}

// TogglePin toggles always-on-top
func (c *Controller) TogglePin() {
	pinned := c.window.ToggleAlwaysOnTop()
	c.view.SetPinned(pinned)
}

// ToggleMinimize collapses or restores the widget
func (c *Controller) ToggleMinimize() {
	// The full layout must be gone before the window shrinks to the square
	if !c.window.State().IsMinimized {
		c.view.SetMinimized(true)
	}
	minimized := c.window.ToggleMinimize()
	c.view.SetMinimized(minimized)
}

// Close stops the rotation and quits
func (c *Controller) Close() {
	c.rotation.Stop()
	c.window.Close()
}
