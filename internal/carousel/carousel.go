// Package carousel implements the rotating slide controllers used by the
// public page for offers and gallery images. Each controller owns one
// ticker goroutine and a cursor; slide content stays in the page layer.
package carousel

import (
	"sync"
	"time"
)

// Controller cycles an index over a fixed number of slides. Auto-advance
// runs only when there are at least two slides; a single slide or an empty
// set never starts a ticker. Manual navigation shares the same wrap
// arithmetic as the timer and does not reset the timer's phase, so a jump
// right before a tick still advances on schedule.
type Controller struct {
	mu    sync.Mutex
	index int
	count int

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a controller over count slides advancing every interval.
// The ticker starts immediately when count > 1 and interval > 0.
func New(count int, interval time.Duration) *Controller {
	c := &Controller{
		count: count,
		done:  make(chan struct{}),
	}
	if count > 1 && interval > 0 {
		c.ticker = time.NewTicker(interval)
		go c.run()
	}
	return c
}

func (c *Controller) run() {
	for {
		select {
		case <-c.ticker.C:
			c.Next()
		case <-c.done:
			return
		}
	}
}

// Index returns the current slide position.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Count returns the number of slides.
func (c *Controller) Count() int {
	return c.count
}

// Next advances one slide, wrapping past the end.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}

// Prev moves back one slide, wrapping to the last.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.index = (c.index - 1 + c.count) % c.count
}

// Jump moves directly to slide i. Out-of-range targets are ignored.
func (c *Controller) Jump(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.count {
		return
	}
	c.index = i
}

// Stop halts auto-advance and releases the ticker. Safe to call more than
// once and on controllers that never started one.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
		if c.ticker != nil {
			c.ticker.Stop()
		}
	})
}
