package ui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"villaoasis/internal/carousel"
)

// Sender delivers a message into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramScheduler runs carousel timers on the bubbletea update loop. The
// wall-clock timer only posts a message; the callback itself runs inside
// Update, so engines are never touched from a timer goroutine.
type ProgramScheduler struct {
	mu     sync.RWMutex
	sender Sender
}

// NewProgramScheduler returns a scheduler that drops fires until Attach
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{}
}

// Attach sets the program timer fires are delivered to
func (s *ProgramScheduler) Attach(sender Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

// AfterFunc implements carousel.Scheduler
func (s *ProgramScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	t := &teaTimer{}
	t.timer = time.AfterFunc(d, func() {
		if t.stopped.Load() {
			return
		}
		s.mu.RLock()
		sender := s.sender
		s.mu.RUnlock()
		if sender == nil {
			return
		}
		sender.Send(timerFiredMsg{fire: func() {
			// Stopped while the message was queued
			if t.stopped.Load() {
				return
			}
			f()
		}})
	})
	return t
}

type teaTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop reports whether the timer was still pending
func (t *teaTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	return t.timer.Stop()
}
