package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCarouselMoved   EventType = "CarouselMoved"
	EventCarouselTimer   EventType = "CarouselTimer"
	EventPageSizeChanged EventType = "PageSizeChanged"
	EventCarouselStarted EventType = "CarouselStarted"
	EventCarouselStopped EventType = "CarouselStopped"
	EventViewportResized EventType = "ViewportResized"
	EventSectionChanged  EventType = "SectionChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CarouselMovedEvent is emitted when a carousel index changes
type CarouselMovedEvent struct {
	Carousel string
	Trigger  string // auto, manual, swipe
	From     int
	To       int
	State    CarouselState
}

func (e CarouselMovedEvent) Type() EventType { return EventCarouselMoved }

// CarouselTimerEvent is emitted when an autoplay timer is armed or cancelled
type CarouselTimerEvent struct {
	Carousel string
	Armed    bool
	Trigger  string
}

func (e CarouselTimerEvent) Type() EventType { return EventCarouselTimer }

// PageSizeChangedEvent is emitted when a viewport change crosses a breakpoint
type PageSizeChangedEvent struct {
	Carousel string
	From     int // index before the clamp
	To       int
	State    CarouselState
}

func (e PageSizeChangedEvent) Type() EventType { return EventPageSizeChanged }

// CarouselStartedEvent is emitted when a carousel is mounted
type CarouselStartedEvent struct {
	State CarouselState
}

func (e CarouselStartedEvent) Type() EventType { return EventCarouselStarted }

// CarouselStoppedEvent is emitted when a carousel is torn down
type CarouselStoppedEvent struct {
	State CarouselState
}

func (e CarouselStoppedEvent) Type() EventType { return EventCarouselStopped }

// ViewportResizedEvent is emitted when the terminal size changes
type ViewportResizedEvent struct {
	Columns int
	Rows    int
	WidthPx int
}

func (e ViewportResizedEvent) Type() EventType { return EventViewportResized }

// SectionChangedEvent is emitted when the visible section changes
type SectionChangedEvent struct {
	From string
	To   string
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Created bool // defaults were used because no file existed
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	Carousels []string
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
