package internal

import "sync/atomic"

// Scheduler tracks which goroutine, if any, is running a drip and which one
// is running its observer phase.
type Scheduler struct {
	// goroutine ids, 0 when idle
	dripping  atomic.Int64
	observing atomic.Int64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Dripping reports whether the calling goroutine already owns a drip.
func (s *Scheduler) Dripping() bool {
	return s.dripping.Load() == goroutineID()
}

// Observing reports whether the calling goroutine is inside the observer phase.
func (s *Scheduler) Observing() bool {
	return s.observing.Load() == goroutineID()
}

// RunDrip marks the calling goroutine as the drip owner while fn runs. The
// caller must hold the runtime lock.
func (s *Scheduler) RunDrip(fn func()) {
	s.dripping.Store(goroutineID())
	defer s.dripping.Store(0)

	fn()
}

// RunObservers runs fn as the observer phase. The phase ends on every exit
// path, including a panicking observer.
func (s *Scheduler) RunObservers(fn func()) {
	s.observing.Store(goroutineID())
	defer s.observing.Store(0)

	fn()
}
