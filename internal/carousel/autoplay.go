package carousel

import "time"

// Scheduler arms one-shot timers. Implementations must invoke f on the
// goroutine that owns the engine, never concurrently with its other methods.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to one pending callback
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer and is safe to call more than once.
	Stop() bool
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc calls fn(d, f)
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return fn(d, f)
}

// arm starts a fresh full-period countdown. At most one timer is live: any
// previous handle must already have been cancelled.
func (e *Engine[T]) arm(trigger Trigger) {
	if e.sched == nil || !e.running {
		return
	}
	if e.timer != nil {
		e.cancel(trigger)
	}
	e.gen++
	gen := e.gen
	e.timer = e.sched.AfterFunc(e.interval, func() { e.fire(gen) })
	e.emit(Event{Kind: KindTimerArmed, Trigger: trigger, From: e.index, To: e.index})
}

// cancel stops the live timer, if any, and invalidates callbacks already
// queued for delivery
func (e *Engine[T]) cancel(trigger Trigger) {
	e.gen++
	if e.timer == nil {
		return
	}
	e.timer.Stop()
	e.timer = nil
	e.emit(Event{Kind: KindTimerCanceled, Trigger: trigger, From: e.index, To: e.index})
}

// fire is the autoplay tick. Stale generations are dropped so a callback
// delivered after a cancel-and-restart never advances twice.
func (e *Engine[T]) fire(gen uint64) {
	if !e.running || gen != e.gen {
		return
	}
	e.timer = nil
	e.move(e.step(e.index, 1), TriggerAuto)
	e.arm(TriggerAuto)
}

// TimerActive reports whether an autoplay callback is pending
func (e *Engine[T]) TimerActive() bool {
	return e.timer != nil
}
