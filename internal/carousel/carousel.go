// Package carousel implements the autoplaying cyclic index shared by the
// gallery slideshow and the paged reviews grid.
//
// An Engine is not safe for concurrent use. All methods, and every timer
// callback delivered by its Scheduler, must run on the goroutine that owns
// the engine.
package carousel

import (
	"errors"
	"time"
)

// ErrEmptySequence is returned when an engine is constructed without items
var ErrEmptySequence = errors.New("carousel: empty sequence")

// Variant selects how an engine steps through its sequence
type Variant int

const (
	// Single shows one item and steps one item at a time
	Single Variant = iota
	// Paged shows a breakpoint-derived number of items and steps a page at a time
	Paged
)

func (v Variant) String() string {
	switch v {
	case Single:
		return "single"
	case Paged:
		return "paged"
	default:
		return "unknown"
	}
}

// Default autoplay periods
const (
	ImageInterval = 5 * time.Second
	PagedInterval = 6 * time.Second
)

// Engine owns the current index, page size and autoplay timer of one carousel
type Engine[T any] struct {
	name        string
	variant     Variant
	items       []T
	index       int
	pageSize    int
	width       int
	breakpoints Breakpoints
	interval    time.Duration

	sched    Scheduler
	observer Observer
	timer    Timer
	gen      uint64
	running  bool

	swipe Swipe
}

// State is a point-in-time copy of an engine's externally visible state
type State struct {
	Name       string  `json:"name"`
	Variant    Variant `json:"-"`
	Index      int     `json:"index"`
	PageSize   int     `json:"page_size"`
	PageCount  int     `json:"page_count"`
	ActivePage int     `json:"active_page"`
	Len        int     `json:"len"`
	Running    bool    `json:"running"`
}

// Option configures an engine at construction
type Option func(*options)

type options struct {
	name        string
	variant     Variant
	interval    time.Duration
	sched       Scheduler
	observer    Observer
	breakpoints Breakpoints
	width       int
}

// WithName labels the engine in emitted events
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithVariant selects single-item or paged stepping
func WithVariant(v Variant) Option {
	return func(o *options) { o.variant = v }
}

// WithInterval overrides the autoplay period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithScheduler sets the timer source. Without one the engine never autoplays.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithObserver registers a listener for engine events
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithBreakpoints overrides the viewport widths used by the paged variant
func WithBreakpoints(bp Breakpoints) Option {
	return func(o *options) { o.breakpoints = bp }
}

// WithViewportWidth sets the viewport width evaluated at mount
func WithViewportWidth(width int) Option {
	return func(o *options) { o.width = width }
}

// New creates an engine over items. The slice is copied and never modified.
func New[T any](items []T, opts ...Option) (*Engine[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}

	o := options{
		variant:     Single,
		breakpoints: DefaultBreakpoints,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval <= 0 {
		o.interval = ImageInterval
		if o.variant == Paged {
			o.interval = PagedInterval
		}
	}

	seq := make([]T, len(items))
	copy(seq, items)

	e := &Engine[T]{
		name:        o.name,
		variant:     o.variant,
		items:       seq,
		pageSize:    1,
		width:       o.width,
		breakpoints: o.breakpoints,
		interval:    o.interval,
		sched:       o.sched,
		observer:    o.observer,
	}
	if e.variant == Paged {
		e.pageSize = e.clampPageSize(PageSizeForWidth(e.width, e.breakpoints))
	}
	return e, nil
}

// NewImage creates a single-item carousel that advances every five seconds
func NewImage[T any](items []T, sched Scheduler, opts ...Option) (*Engine[T], error) {
	base := []Option{WithVariant(Single), WithInterval(ImageInterval), WithScheduler(sched)}
	return New(items, append(base, opts...)...)
}

// NewPaged creates a breakpoint-paged carousel that advances every six seconds
func NewPaged[T any](items []T, sched Scheduler, opts ...Option) (*Engine[T], error) {
	base := []Option{WithVariant(Paged), WithInterval(PagedInterval), WithScheduler(sched)}
	return New(items, append(base, opts...)...)
}

// Name returns the engine label
func (e *Engine[T]) Name() string { return e.name }

// Variant returns the stepping variant
func (e *Engine[T]) Variant() Variant { return e.variant }

// Interval returns the autoplay period
func (e *Engine[T]) Interval() time.Duration { return e.interval }

// Len returns the sequence length
func (e *Engine[T]) Len() int { return len(e.items) }

// Index returns the start offset of the visible window
func (e *Engine[T]) Index() int { return e.index }

// PageSize returns the number of visible items
func (e *Engine[T]) PageSize() int { return e.pageSize }

// Running reports whether the engine is mounted
func (e *Engine[T]) Running() bool { return e.running }

// Start mounts the engine: the page size is evaluated and autoplay armed.
// Calling Start on a running engine does nothing.
func (e *Engine[T]) Start() {
	if e.running {
		return
	}
	e.running = true
	if e.variant == Paged {
		e.applyPageSize(PageSizeForWidth(e.width, e.breakpoints), TriggerMount)
	}
	e.arm(TriggerMount)
}

// Stop tears the engine down and cancels autoplay. It is idempotent.
func (e *Engine[T]) Stop() {
	e.cancel(TriggerTeardown)
	e.running = false
	e.swipe.Reset()
}

// Next moves forward one step and restarts autoplay
func (e *Engine[T]) Next() {
	e.Advance(1)
}

// Prev moves back one step and restarts autoplay
func (e *Engine[T]) Prev() {
	e.Advance(-1)
}

// Advance moves by steps items (single) or pages (paged) and restarts autoplay
func (e *Engine[T]) Advance(steps int) {
	e.manual(TriggerManual, func() int { return e.step(e.index, steps) })
}

// GoTo jumps to any index. Out-of-range values wrap around the sequence.
func (e *Engine[T]) GoTo(i int) {
	e.manual(TriggerManual, func() int { return Normalize(i, len(e.items)) })
}

// GoToPage jumps to the start of page k, as an indicator dot does
func (e *Engine[T]) GoToPage(k int) {
	e.GoTo(k * e.pageSize)
}

// OnTouchStart records the horizontal start of a gesture
func (e *Engine[T]) OnTouchStart(x float64) {
	if e.variant != Single {
		return
	}
	e.swipe.Start(x)
}

// OnTouchEnd resolves a gesture into at most one navigation
func (e *Engine[T]) OnTouchEnd(x float64) {
	if e.variant != Single {
		return
	}
	dir := e.swipe.End(x)
	if dir == 0 {
		return
	}
	e.manual(TriggerSwipe, func() int { return e.step(e.index, dir) })
}

// OnViewportChange re-derives the page size of a paged engine. A changed
// page size clamps the index and restarts autoplay.
func (e *Engine[T]) OnViewportChange(width int) {
	e.width = width
	if e.variant != Paged {
		return
	}
	p := e.clampPageSize(PageSizeForWidth(width, e.breakpoints))
	if p == e.pageSize {
		return
	}
	e.cancel(TriggerResize)
	e.applyPageSize(p, TriggerResize)
	e.arm(TriggerResize)
}

// SetPageSize forces a page size on a paged engine, clamped to [1, Len]
func (e *Engine[T]) SetPageSize(p int) {
	if e.variant != Paged {
		return
	}
	p = e.clampPageSize(p)
	if p == e.pageSize {
		return
	}
	e.cancel(TriggerResize)
	e.applyPageSize(p, TriggerResize)
	e.arm(TriggerResize)
}

// Snapshot returns a copy of the engine state
func (e *Engine[T]) Snapshot() State {
	return State{
		Name:       e.name,
		Variant:    e.variant,
		Index:      e.index,
		PageSize:   e.pageSize,
		PageCount:  e.PageCount(),
		ActivePage: e.ActivePage(),
		Len:        len(e.items),
		Running:    e.running,
	}
}

// manual performs a user-driven move: cancel, move, re-arm
func (e *Engine[T]) manual(trigger Trigger, target func() int) {
	e.cancel(trigger)
	e.move(target(), trigger)
	e.arm(trigger)
}

func (e *Engine[T]) move(to int, trigger Trigger) {
	from := e.index
	e.index = to
	e.emit(Event{Kind: KindMoved, Trigger: trigger, From: from, To: to})
}

func (e *Engine[T]) applyPageSize(p int, trigger Trigger) {
	p = e.clampPageSize(p)
	if p == e.pageSize {
		return
	}
	from := e.index
	e.pageSize = p
	if limit := e.MaxIndex(); e.index > limit {
		e.index = limit
	}
	e.emit(Event{Kind: KindPageSizeChanged, Trigger: trigger, From: from, To: e.index})
}

func (e *Engine[T]) clampPageSize(p int) int {
	if p < 1 {
		return 1
	}
	if p > len(e.items) {
		return len(e.items)
	}
	return p
}

func (e *Engine[T]) emit(ev Event) {
	if e.observer == nil {
		return
	}
	ev.Carousel = e.name
	ev.PageSize = e.pageSize
	e.observer.Observe(ev)
}
