package ui

import (
	"villaoasis/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ShutdownMsg asks the model to tear down and quit, e.g. on a signal or a
// failed kiosk listener
type ShutdownMsg struct {
	Reason string
}

// timerFiredMsg carries a carousel timer callback onto the update loop
type timerFiredMsg struct {
	fire func()
}

// clearStatusMsg clears the status line if seq is still the latest message
type clearStatusMsg struct {
	seq int
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	title string
	err   error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
