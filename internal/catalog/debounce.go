package catalog

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the settle delay for search text input.
const DefaultSearchDelay = 300 * time.Millisecond

// Debouncer delivers the last value of a rapidly changing input once the
// input has been quiet for the configured delay. Intermediate values are
// dropped: a new Set cancels any pending delivery and restarts the timer, so
// at most one timer is live at a time. After Close no delivery happens.
//
// fn runs with the debouncer's lock held and must not call Set or Close.
type Debouncer[V any] struct {
	delay time.Duration
	fn    func(V)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewDebouncer creates a debouncer that calls fn with the settled value.
func NewDebouncer[V any](delay time.Duration, fn func(V)) *Debouncer[V] {
	return &Debouncer[V]{delay: delay, fn: fn}
}

// Set feeds a new input value, cancelling any pending delivery.
func (d *Debouncer[V]) Set(v V) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		// The lock is held through fn so a concurrent Close cannot return
		// while a delivery is still running.
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed {
			return
		}
		d.timer = nil
		d.fn(v)
	})
}

// Close cancels any pending delivery and waits for an in-flight one to
// finish. No delivery runs after Close returns.
func (d *Debouncer[V]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
