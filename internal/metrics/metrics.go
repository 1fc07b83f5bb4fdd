// Package metrics exposes carousel activity as Prometheus collectors fed
// from the event bus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"villaoasis/internal/domain"
	"villaoasis/internal/eventbus"
)

const Namespace = "villaoasis"

type Metrics struct {
	moves           *prometheus.CounterVec // by carousel, trigger
	timerArms       *prometheus.CounterVec // by carousel
	timerCancels    *prometheus.CounterVec // by carousel, trigger
	pageSizeChanges *prometheus.CounterVec // by carousel
	sectionViews    *prometheus.CounterVec // by section

	index    *prometheus.GaugeVec
	pageSize *prometheus.GaugeVec
	running  *prometheus.GaugeVec
}

// New creates a new Metrics instance and registers all metrics with the provided registerer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "moves_total",
			Help:      "Index changes by carousel and cause",
		}, []string{"carousel", "trigger"}),
		timerArms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "timer_arms_total",
			Help:      "Autoplay timers started",
		}, []string{"carousel"}),
		timerCancels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "timer_cancels_total",
			Help:      "Autoplay timers cancelled before firing",
		}, []string{"carousel", "trigger"}),
		pageSizeChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "page_size_changes_total",
			Help:      "Breakpoint crossings that changed the page size",
		}, []string{"carousel"}),
		sectionViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "section_views_total",
			Help:      "Times each section was brought on screen",
		}, []string{"section"}),
		index: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "index",
			Help:      "Current start index",
		}, []string{"carousel"}),
		pageSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "page_size",
			Help:      "Items visible per page",
		}, []string{"carousel"}),
		running: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "carousel",
			Name:      "running",
			Help:      "1 while the carousel is mounted",
		}, []string{"carousel"}),
	}

	err := errors.Join(
		reg.Register(m.moves),
		reg.Register(m.timerArms),
		reg.Register(m.timerCancels),
		reg.Register(m.pageSizeChanges),
		reg.Register(m.sectionViews),
		reg.Register(m.index),
		reg.Register(m.pageSize),
		reg.Register(m.running),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Subscribe feeds the collectors from bus events. The returned func
// detaches every subscription.
func (m *Metrics) Subscribe(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventCarouselMoved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselMovedEvent); ok {
				m.RecordMove(ev.Carousel, ev.Trigger, ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventCarouselTimer, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselTimerEvent); ok {
				m.RecordTimer(ev.Carousel, ev.Armed, ev.Trigger)
			}
		}),
		bus.Subscribe(eventbus.EventPageSizeChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.PageSizeChangedEvent); ok {
				m.RecordPageSize(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventCarouselStarted, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselStartedEvent); ok {
				m.SetState(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventCarouselStopped, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CarouselStoppedEvent); ok {
				m.SetState(ev.State)
			}
		}),
		bus.Subscribe(eventbus.EventSectionChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SectionChangedEvent); ok {
				m.IncSectionView(ev.To)
			}
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// RecordMove counts one index change and updates the state gauges
func (m *Metrics) RecordMove(carousel, trigger string, s domain.CarouselState) {
	if m == nil {
		return
	}
	m.moves.WithLabelValues(carousel, trigger).Inc()
	m.SetState(s)
}

// RecordTimer counts an autoplay arm or cancel
func (m *Metrics) RecordTimer(carousel string, armed bool, trigger string) {
	if m == nil {
		return
	}
	if armed {
		m.timerArms.WithLabelValues(carousel).Inc()
		return
	}
	m.timerCancels.WithLabelValues(carousel, trigger).Inc()
}

// RecordPageSize counts a breakpoint crossing
func (m *Metrics) RecordPageSize(s domain.CarouselState) {
	if m == nil {
		return
	}
	m.pageSizeChanges.WithLabelValues(s.Name).Inc()
	m.SetState(s)
}

// SetState updates the gauges of one carousel
func (m *Metrics) SetState(s domain.CarouselState) {
	if m == nil {
		return
	}
	m.index.WithLabelValues(s.Name).Set(float64(s.Index))
	m.pageSize.WithLabelValues(s.Name).Set(float64(s.PageSize))
	running := 0.0
	if s.Running {
		running = 1
	}
	m.running.WithLabelValues(s.Name).Set(running)
}

// IncSectionView counts a section coming on screen
func (m *Metrics) IncSectionView(section string) {
	if m == nil {
		return
	}
	m.sectionViews.WithLabelValues(section).Inc()
}
