// Package carouseltest provides a virtual-clock scheduler for driving
// carousel autoplay deterministically in tests.
package carouseltest

import (
	"sort"
	"sync"
	"time"

	"villaoasis/internal/carousel"
)

// ManualScheduler fires callbacks only when Advance moves its clock past
// their deadline. Callbacks run synchronously inside Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
	armed   int
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler with its clock at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements carousel.Scheduler
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.armed++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Stop implements carousel.Timer
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// Advance moves the clock forward by d, firing every due callback in
// deadline order. Callbacks armed while advancing fire too if they fall due
// within the same window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		t := s.nextDue(target)
		if t == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = t.at
		t.fired = true
		s.remove(t)
		s.mu.Unlock()

		t.f()
	}
}

// Now returns the virtual time elapsed since creation
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed, unfired, unstopped timers
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Armed returns how many timers have been created in total
func (s *ManualScheduler) Armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

// NextDeadline returns the virtual time of the earliest pending callback
func (s *ManualScheduler) NextDeadline() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, false
	}
	s.sortPending()
	return s.pending[0].at, true
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	s.sortPending()
	if t := s.pending[0]; t.at <= target {
		return t
	}
	return nil
}

func (s *ManualScheduler) sortPending() {
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
