package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"vocabwidget/internal/domain"
	"vocabwidget/internal/rotation"
)

const loadingText = "Loading vocabulary..."

// Actions are the widget's button callbacks. Each runs off the UI loop.
type Actions struct {
	OnPin      func()
	OnMinimize func()
	OnClose    func()
	OnPrevious func()
	OnNext     func()
	OnPause    func()
	OnReload   func()
}

// View renders the widget with Fyne widgets
type View struct {
	container *fyne.Container
	normal    *fyne.Container

	loading   *fyne.Container
	content   *fyne.Container
	errorView *fyne.Container

	wordLabel          *widget.Label
	pronunciationLabel *widget.Label
	meaningLabel       *widget.Label
	errorLabel         *widget.Label
	countdownLabel     *widget.Label
	progressBar        *widget.ProgressBar

	pinButton      *widget.Button
	minimizeButton *widget.Button
	pauseButton    *widget.Button
	restoreButton  *widget.Button

	actions Actions
}

// NewView builds the widget layout
func NewView(actions Actions) *View {
	v := &View{actions: actions}
	v.setupView()
	return v
}

func (v *View) setupView() {
	// Header: pin | minimize | close
	v.pinButton = widget.NewButtonWithIcon("", theme.VisibilityIcon(), offLoop(v.actions.OnPin))
	v.minimizeButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), offLoop(v.actions.OnMinimize))
	closeButton := widget.NewButtonWithIcon("", theme.CancelIcon(), offLoop(v.actions.OnClose))
	for _, b := range []*widget.Button{v.pinButton, v.minimizeButton, closeButton} {
		b.Importance = widget.LowImportance
	}
	header := container.NewHBox(
		v.pinButton,
		layout.NewSpacer(),
		v.minimizeButton,
		closeButton,
	)

	// Loading view
	v.loading = container.NewCenter(widget.NewLabel(loadingText))

	// Content view
	v.wordLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.pronunciationLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	v.meaningLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	v.meaningLabel.Wrapping = fyne.TextWrapWord

	v.countdownLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	v.progressBar = widget.NewProgressBar()
	v.progressBar.Max = 1
	v.progressBar.TextFormatter = func() string { return "" }

	v.pauseButton = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), offLoop(v.actions.OnPause))
	controls := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.NavigateBackIcon(), offLoop(v.actions.OnPrevious)),
		v.pauseButton,
		widget.NewButtonWithIcon("", theme.NavigateNextIcon(), offLoop(v.actions.OnNext)),
		layout.NewSpacer(),
	)

	v.content = container.NewBorder(
		nil,
		container.NewVBox(v.progressBar, v.countdownLabel, controls),
		nil, nil,
		container.NewVBox(v.wordLabel, v.pronunciationLabel, v.meaningLabel),
	)

	// Error view
	v.errorLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	v.errorLabel.Wrapping = fyne.TextWrapWord
	reloadButton := widget.NewButtonWithIcon("Reload", theme.ViewRefreshIcon(), offLoop(v.actions.OnReload))
	v.errorView = container.NewBorder(nil, container.NewCenter(reloadButton), nil, nil, v.errorLabel)

	body := container.NewStack(v.loading, v.content, v.errorView)
	v.normal = container.NewBorder(header, nil, nil, nil, body)

	// Minimized: a single restore button filling the square
	v.restoreButton = widget.NewButtonWithIcon("", theme.DocumentIcon(), offLoop(v.actions.OnMinimize))
	v.restoreButton.Hide()

	v.container = container.NewStack(v.normal, v.restoreButton)
	v.switchTo(v.loading)
}

// GetContainer returns the root container
func (v *View) GetContainer() *fyne.Container {
	return v.container
}

// ShowLoading switches to the loading view
func (v *View) ShowLoading() {
	fyne.Do(func() {
		v.switchTo(v.loading)
	})
}

// ShowError switches to the error view with message
func (v *View) ShowError(message string) {
	fyne.Do(func() {
		v.errorLabel.SetText(message)
		v.switchTo(v.errorView)
	})
}

// ShowCard switches to the content view showing card
func (v *View) ShowCard(card domain.Card) {
	fyne.Do(func() {
		v.wordLabel.SetText(card.DisplayWord())
		if pron := card.DisplayPronunciation(); pron != "" {
			v.pronunciationLabel.SetText(pron)
			v.pronunciationLabel.Show()
		} else {
			v.pronunciationLabel.Hide()
		}
		v.meaningLabel.SetText(card.DisplayMeaning())
		v.switchTo(v.content)
	})
}

// ShowProgress updates the countdown and progress bar
func (v *View) ShowProgress(progress rotation.Progress) {
	fyne.Do(func() {
		v.progressBar.SetValue(progress.Fraction())
		v.countdownLabel.SetText(progress.Countdown())
	})
}

// SetPaused swaps the pause button icon
func (v *View) SetPaused(paused bool) {
	fyne.Do(func() {
		if paused {
			v.pauseButton.SetIcon(theme.MediaPlayIcon())
		} else {
			v.pauseButton.SetIcon(theme.MediaPauseIcon())
		}
	})
}

// SetPinned highlights the pin button while always-on-top
func (v *View) SetPinned(pinned bool) {
	fyne.Do(func() {
		if pinned {
			v.pinButton.Importance = widget.HighImportance
		} else {
			v.pinButton.Importance = widget.LowImportance
		}
		v.pinButton.Refresh()
	})
}

// SetMinimized swaps the full layout for the restore button
func (v *View) SetMinimized(minimized bool) {
	fyne.Do(func() {
		if minimized {
			v.normal.Hide()
			v.restoreButton.Show()
		} else {
			v.restoreButton.Hide()
			v.normal.Show()
		}
	})
}

// switchTo shows exactly one of the body views
func (v *View) switchTo(target *fyne.Container) {
	for _, c := range []*fyne.Container{v.loading, v.content, v.errorView} {
		if c == target {
			c.Show()
		} else {
			c.Hide()
		}
	}
}

// offLoop wraps fn to run on its own goroutine
func offLoop(fn func()) func() {
	return func() {
		if fn != nil {
			go fn()
		}
	}
}
