package rotation

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// scheduler owns the advance timer and the countdown tick. Both are always
// armed and cancelled together. Every start bumps the generation so a
// callback that was already in flight when stop ran can tell it is stale.
//
// scheduler is not safe for concurrent use; the engine guards it.
type scheduler struct {
	clock      clockwork.Clock
	generation uint64
	startedAt  time.Time
	advance    clockwork.Timer
	tick       clockwork.Timer
}

func newScheduler(clock clockwork.Clock) *scheduler {
	return &scheduler{clock: clock}
}

// start cancels any armed actions and arms both from zero elapsed
func (s *scheduler) start(interval, tickEvery time.Duration, onAdvance, onTick func(gen uint64)) {
	s.stop()

	gen := s.generation
	s.startedAt = s.clock.Now()
	s.advance = s.clock.AfterFunc(interval, func() { onAdvance(gen) })
	s.tick = s.clock.AfterFunc(tickEvery, func() { onTick(gen) })
}

// rearmTick schedules the next countdown tick of the current generation
func (s *scheduler) rearmTick(tickEvery time.Duration, onTick func(gen uint64)) {
	gen := s.generation
	s.tick = s.clock.AfterFunc(tickEvery, func() { onTick(gen) })
}

// stopTick ends the countdown without touching the advance timer
func (s *scheduler) stopTick() {
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
}

// stop cancels both actions and invalidates in-flight callbacks
func (s *scheduler) stop() {
	s.generation++
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
	s.stopTick()
}

// current reports whether a callback belongs to the armed generation
func (s *scheduler) current(gen uint64) bool {
	return s.advance != nil && gen == s.generation
}

// armed reports whether the advance timer is scheduled
func (s *scheduler) armed() bool {
	return s.advance != nil
}

// elapsed returns the time since the actions were last started
func (s *scheduler) elapsed() time.Duration {
	if s.advance == nil {
		return 0
	}
	return s.clock.Since(s.startedAt)
}
