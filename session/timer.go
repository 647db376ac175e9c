package session

import (
	"time"
)

// Timer is a one-shot callback scheduled in simulation time
type Timer struct {
	remaining time.Duration
	fn        func()
	stopped   bool
}

// Stop prevents the callback from firing; returns false if it already fired or was stopped
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Scheduler runs timers against dt fed by the game loop, so paused time never elapses
// Not safe for concurrent use
type Scheduler struct {
	timers []*Timer
	firing []*Timer
}

// After schedules fn once d of simulated time has passed
// A zero or negative d fires on the next Advance
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	t := &Timer{remaining: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves every timer forward by dt and fires those that expire, earliest first
// Timers scheduled by a firing callback start counting on the next Advance
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	pending := s.timers
	s.timers = nil

	var due []*Timer
	for _, t := range pending {
		if t.stopped {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			s.timers = append(s.timers, t)
		}
	}

	// Stable insertion sort: few timers are ever pending
	for i := 1; i < len(due); i++ {
		for j := i; j > 0 && due[j].remaining < due[j-1].remaining; j-- {
			due[j], due[j-1] = due[j-1], due[j]
		}
	}

	s.firing = due
	defer func() { s.firing = nil }()

	fired := 0
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.stopped = true
		t.fn()
		fired++
	}
	return fired
}

// Clear stops every pending timer, including ones due in an Advance still in progress
func (s *Scheduler) Clear() {
	for _, t := range s.timers {
		t.stopped = true
	}
	for _, t := range s.firing {
		t.stopped = true
	}
	s.timers = nil
}

// Len returns the number of pending timers
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
