// Package statustest provides a manual clock for tests that depend on the
// status auto-clear timer.
package statustest

import (
	"sync"
	"time"
)

// Scheduler implements status.Scheduler. Timers fire only from Advance,
// synchronously on the caller's goroutine.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*timer
}

type timer struct {
	due     time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &timer{due: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.fired || t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

// Advance moves the clock forward by d and runs every timer that became due.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*timer
	for _, t := range s.timers {
		if !t.fired && !t.stopped && t.due <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// FireAll runs every timer ever scheduled, including stopped ones, as if each
// had already started when it was cancelled.
func (s *Scheduler) FireAll() {
	s.mu.Lock()
	timers := append([]*timer(nil), s.timers...)
	s.mu.Unlock()

	for _, t := range timers {
		t.fn()
	}
}

// Pending returns the number of timers that are neither fired nor stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
