package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"villaoasis/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCarouselMoved   = domain.EventCarouselMoved
	EventCarouselTimer   = domain.EventCarouselTimer
	EventPageSizeChanged = domain.EventPageSizeChanged
	EventCarouselStarted = domain.EventCarouselStarted
	EventCarouselStopped = domain.EventCarouselStopped
	EventViewportResized = domain.EventViewportResized
	EventSectionChanged  = domain.EventSectionChanged
	EventError           = domain.EventError
	EventConfigLoaded    = domain.EventConfigLoaded
	EventAppReady        = domain.EventAppReady
)

// Re-export domain event types
type CarouselMovedEvent = domain.CarouselMovedEvent
type CarouselTimerEvent = domain.CarouselTimerEvent
type PageSizeChangedEvent = domain.PageSizeChangedEvent
type CarouselStartedEvent = domain.CarouselStartedEvent
type CarouselStoppedEvent = domain.CarouselStoppedEvent
type ViewportResizedEvent = domain.ViewportResizedEvent
type SectionChangedEvent = domain.SectionChangedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

const queueSize = 1000

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	closed   bool

	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus. Events are delivered on a single dispatcher
// goroutine in publish order; handlers for one event run one after another.
func New(log *zap.SugaredLogger) EventBus {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	b := &bus{
		log:       log.Named("eventbus"),
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, queueSize),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks: when the
// queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return
	}

	switch event.Type() {
	case EventCarouselMoved, EventCarouselTimer:
		// too frequent for the log
	default:
		b.log.Debugw("publishing event", "type", string(event.Type()))
	}

	select {
	case b.eventChan <- event:
	default:
		b.log.Warnw("event queue full, dropping event", "type", string(event.Type()))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after delivering everything already queued
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		b.mu.Unlock()
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)
		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Errorw("event handler panic",
				"type", string(event.Type()),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	h(event)
}
