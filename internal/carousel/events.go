package carousel

// Kind identifies what an Event reports
type Kind int

const (
	KindMoved Kind = iota
	KindPageSizeChanged
	KindTimerArmed
	KindTimerCanceled
)

func (k Kind) String() string {
	switch k {
	case KindMoved:
		return "moved"
	case KindPageSizeChanged:
		return "page_size_changed"
	case KindTimerArmed:
		return "timer_armed"
	case KindTimerCanceled:
		return "timer_canceled"
	default:
		return "unknown"
	}
}

// Trigger identifies what caused an Event
type Trigger int

const (
	TriggerAuto Trigger = iota
	TriggerManual
	TriggerSwipe
	TriggerResize
	TriggerMount
	TriggerTeardown
)

func (t Trigger) String() string {
	switch t {
	case TriggerAuto:
		return "auto"
	case TriggerManual:
		return "manual"
	case TriggerSwipe:
		return "swipe"
	case TriggerResize:
		return "resize"
	case TriggerMount:
		return "mount"
	case TriggerTeardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// Event describes one state change of an engine. From and To are indexes;
// PageSize is the page size after the change.
type Event struct {
	Carousel string
	Kind     Kind
	Trigger  Trigger
	From     int
	To       int
	PageSize int
}

// Observer receives engine events synchronously on the owning goroutine
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// Observe calls f(ev)
func (f ObserverFunc) Observe(ev Event) { f(ev) }
