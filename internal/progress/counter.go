// Package progress tracks the number of in-flight API requests so callers
// can drive a loading indicator. The counter is injected wherever it is
// needed rather than being a process-wide singleton; subscribers observe
// every change.
package progress

import "sync"

// Counter counts outstanding requests. The zero value is ready to use.
// It is safe for concurrent use.
type Counter struct {
	mu        sync.Mutex
	count     int
	listeners []func(int)
}

// Add records the start of a request and notifies subscribers.
func (c *Counter) Add() {
	c.notify(+1)
}

// Done records the completion of a request and notifies subscribers.
// Every Add must be paired with exactly one Done.
func (c *Counter) Done() {
	c.notify(-1)
}

// Count returns the current number of in-flight requests.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Busy reports whether any request is in flight.
func (c *Counter) Busy() bool {
	return c.Count() > 0
}

// Subscribe registers a listener invoked with the new count after every
// change. Listeners run while the counter lock is held and must not call
// back into the counter.
func (c *Counter) Subscribe(fn func(count int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Counter) notify(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += delta
	for _, fn := range c.listeners {
		fn(c.count)
	}
}
