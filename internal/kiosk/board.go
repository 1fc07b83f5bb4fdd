// Package kiosk serves a read-only status feed of the running carousels for
// unattended lobby displays.
package kiosk

import (
	"sort"
	"sync"
	"time"

	"villaoasis/internal/domain"
	"villaoasis/internal/eventbus"
)

// Board is the latest known state of every carousel and the visible section.
// It is written by the bus dispatcher and read by HTTP handlers.
type Board struct {
	mu        sync.RWMutex
	carousels map[string]domain.CarouselState
	section   string
	columns   int
	widthPx   int
	started   time.Time
	updated   time.Time
	now       func() time.Time
}

// NewBoard returns an empty board
func NewBoard() *Board {
	return newBoardAt(time.Now)
}

func newBoardAt(now func() time.Time) *Board {
	t := now()
	return &Board{
		carousels: make(map[string]domain.CarouselState),
		section:   "Home",
		started:   t,
		updated:   t,
		now:       now,
	}
}

// Subscribe keeps the board current from bus events
func (b *Board) Subscribe(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventCarouselMoved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselMovedEvent); ok {
				b.Put(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventPageSizeChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.PageSizeChangedEvent); ok {
				b.Put(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventCarouselStarted, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselStartedEvent); ok {
				b.Put(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventCarouselStopped, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselStoppedEvent); ok {
				b.Put(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventSectionChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SectionChangedEvent); ok {
				b.SetSection(ev.To)
			}
		}),
		bus.Subscribe(eventbus.EventViewportResized, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ViewportResizedEvent); ok {
				b.SetViewport(ev.Columns, ev.WidthPx)
			}
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Put records a carousel state
func (b *Board) Put(s domain.CarouselState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.carousels[s.Name] = s
	b.updated = b.now()
}

// SetSection records the visible section
func (b *Board) SetSection(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.section = name
	b.updated = b.now()
}

// SetViewport records the terminal width
func (b *Board) SetViewport(columns, widthPx int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.columns = columns
	b.widthPx = widthPx
	b.updated = b.now()
}

// Carousel returns one carousel by name
func (b *Board) Carousel(name string) (domain.CarouselState, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.carousels[name]
	return s, ok
}

// Status is the JSON document served at /api/status
type Status struct {
	Section   string                 `json:"section"`
	Columns   int                    `json:"columns"`
	WidthPx   int                    `json:"width_px"`
	Uptime    string                 `json:"uptime"`
	UpdatedAt time.Time              `json:"updated_at"`
	Carousels []domain.CarouselState `json:"carousels"`
}

// Snapshot returns a copy of the board, carousels sorted by name
func (b *Board) Snapshot() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := make([]domain.CarouselState, 0, len(b.carousels))
	for _, s := range b.carousels {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return Status{
		Section:   b.section,
		Columns:   b.columns,
		WidthPx:   b.widthPx,
		Uptime:    b.now().Sub(b.started).Truncate(time.Second).String(),
		UpdatedAt: b.updated,
		Carousels: list,
	}
}
