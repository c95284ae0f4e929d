package watcher

import (
	"sync"
	"time"
)

// debouncer coalesces operations on the watched file into one event that is
// emitted once no new operation has arrived for delay.
type debouncer struct {
	delay time.Duration
	emit  func(Event)

	mu      sync.Mutex
	pending *pendingEvent
	stopped bool
}

// pendingEvent tracks a debounced event.
type pendingEvent struct {
	event Event
	timer *time.Timer
}

func newDebouncer(delay time.Duration, emit func(Event)) *debouncer {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	return &debouncer{delay: delay, emit: emit}
}

// add records an operation and restarts the quiet period.
func (d *debouncer) add(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.pending != nil {
		d.pending.event.Op |= event.Op
		d.pending.event.Path = event.Path
		d.pending.event.Timestamp = event.Timestamp
		d.pending.timer.Reset(d.delay)
		return
	}

	p := &pendingEvent{event: event}
	p.timer = time.AfterFunc(d.delay, func() { d.fire(p) })
	d.pending = p
}

func (d *debouncer) fire(p *pendingEvent) {
	d.mu.Lock()
	if d.pending != p || d.stopped {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	event := p.event
	d.mu.Unlock()

	d.emit(event)
}

// cancel drops any pending event.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.timer.Stop()
		d.pending = nil
	}
}

// stop cancels pending work and ignores all further operations.
func (d *debouncer) stop() {
	d.cancel()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}
