package rotation

import (
	"fmt"
	"sync"
	"time"

	"vocabwidget/internal/domain"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	// DefaultInterval is how long a card stays on screen
	DefaultInterval = 3 * time.Minute
	// DefaultTick is the countdown refresh period
	DefaultTick = time.Second
)

// Display receives what the engine wants shown
type Display interface {
	ShowCard(card domain.Card)
	ShowProgress(progress Progress)
}

// Progress is the countdown to the next automatic advance
type Progress struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Interval  time.Duration
	// Percent is elapsed/interval clamped to [0,100]
	Percent float64
}

// NewProgress computes progress for elapsed time within interval
func NewProgress(elapsed, interval time.Duration) Progress {
	remaining := max(interval-elapsed, 0)
	percent := 0.0
	if interval > 0 {
		percent = float64(elapsed) / float64(interval) * 100
	}
	percent = min(max(percent, 0), 100)
	return Progress{
		Elapsed:   elapsed,
		Remaining: remaining,
		Interval:  interval,
		Percent:   percent,
	}
}

// Countdown renders the remaining time as "Next: m:ss"
func (p Progress) Countdown() string {
	total := int(p.Remaining / time.Second)
	return fmt.Sprintf("Next: %d:%02d", total/60, total%60)
}

// Fraction returns Percent scaled to [0,1]
func (p Progress) Fraction() float64 {
	return p.Percent / 100
}

// State is a snapshot of the rotation
type State struct {
	Index   int
	Total   int
	Paused  bool
	Elapsed time.Duration
}

// Engine owns the current card index, the advance timer and the countdown
type Engine struct {
	mu        sync.Mutex
	display   Display
	logger    *zap.Logger
	sched     *scheduler
	interval  time.Duration
	tickEvery time.Duration

	deck   domain.Deck
	index  int
	paused bool
}

// Option configures an Engine
type Option func(*Engine)

// WithInterval overrides the advance interval
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// WithTick overrides the countdown period
func WithTick(d time.Duration) Option {
	return func(e *Engine) { e.tickEvery = d }
}

// NewEngine creates a running engine with an empty deck
func NewEngine(clock clockwork.Clock, display Display, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		display:   display,
		logger:    logger,
		sched:     newScheduler(clock),
		interval:  DefaultInterval,
		tickEvery: DefaultTick,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the deck, shows its first card and restarts the schedule.
// An empty deck stops all scheduling.
func (e *Engine) Load(deck domain.Deck) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.deck = deck
	e.index = 0

	if deck.Empty() {
		e.sched.stop()
		e.logger.Debug("Empty deck loaded, rotation idle")
		return
	}

	e.logger.Debug("Deck loaded",
		zap.String("date", deck.Date),
		zap.Int("cards", deck.Len()),
	)
	e.showLocked()
	e.restartLocked()
}

// Next moves to the following card and restarts the schedule
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deck.Empty() {
		return
	}
	e.index = (e.index + 1) % e.deck.Len()
	e.showLocked()
	e.restartLocked()
}

// Previous moves to the preceding card and restarts the schedule
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deck.Empty() {
		return
	}
	if e.index == 0 {
		e.index = e.deck.Len() - 1
	} else {
		e.index--
	}
	e.showLocked()
	e.restartLocked()
}

// TogglePause switches between running and paused and returns the new
// paused state. Resuming starts a fresh interval.
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.paused = !e.paused
	if e.paused {
		e.sched.stop()
	} else {
		e.restartLocked()
	}

	e.logger.Debug("Rotation toggled", zap.Bool("paused", e.paused))
	return e.paused
}

// Stop cancels all scheduling for shutdown
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sched.stop()
}

// State returns a snapshot of the rotation
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return State{
		Index:   e.index,
		Total:   e.deck.Len(),
		Paused:  e.paused,
		Elapsed: e.sched.elapsed(),
	}
}

// Current returns the card on screen
func (e *Engine) Current() (domain.Card, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deck.Empty() {
		return domain.Card{}, false
	}
	return e.deck.Cards[e.index], true
}

// Armed reports whether the advance timer and countdown are scheduled
func (e *Engine) Armed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sched.armed()
}

func (e *Engine) showLocked() {
	e.display.ShowCard(e.deck.Cards[e.index])
}

// restartLocked arms both actions from zero unless paused or empty
func (e *Engine) restartLocked() {
	if e.paused || e.deck.Empty() {
		e.sched.stop()
		return
	}
	e.sched.start(e.interval, e.tickEvery, e.onAdvance, e.onTick)
	e.display.ShowProgress(NewProgress(0, e.interval))
}

func (e *Engine) onAdvance(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sched.current(gen) || e.deck.Empty() {
		return
	}
	e.index = (e.index + 1) % e.deck.Len()
	e.showLocked()
	e.restartLocked()
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sched.current(gen) || e.paused {
		return
	}

	progress := NewProgress(e.sched.elapsed(), e.interval)
	if progress.Remaining <= 0 {
		e.sched.stopTick()
		e.display.ShowProgress(NewProgress(0, e.interval))
		return
	}

	e.display.ShowProgress(progress)
	e.sched.rearmTick(e.tickEvery, e.onTick)
}
