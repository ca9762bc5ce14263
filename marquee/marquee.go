// Package marquee drives an auto-scrolling horizontal list: a fixed
// per-frame advance with a seamless wraparound reset, pause on pointer
// enter, resume on pointer leave. The caller renders its item list
// duplicated exactly once, so the wrap point sits at half the scroll width.
package marquee

import (
	"sync"
	"time"
)

// Surface is the scrollable viewport the marquee advances. Implementations
// bridge to whatever rendering layer hosts the list.
type Surface interface {
	ScrollWidth() float64
	ScrollLeft() float64
	SetScrollLeft(float64)
}

// Marquee is an owned handle: whoever constructs it calls Stop on teardown,
// so no frame callback outlives its surface.
type Marquee struct {
	surface Surface
	speed   float64

	mu      sync.Mutex
	paused  bool
	stopped bool
	done    chan struct{}
}

// New returns a marquee advancing the surface by speed pixels per frame.
func New(surface Surface, speed float64) *Marquee {
	return &Marquee{surface: surface, speed: speed, done: make(chan struct{})}
}

// Tick advances one frame. When the advance reaches half the scroll width
// (the duplicated-content wrap point) the position resets to zero within
// the same tick.
func (m *Marquee) Tick() {
	m.mu.Lock()
	skip := m.paused || m.stopped
	m.mu.Unlock()
	if skip {
		return
	}

	next := m.surface.ScrollLeft() + m.speed
	if next >= m.surface.ScrollWidth()/2 {
		m.surface.SetScrollLeft(0)
		return
	}
	m.surface.SetScrollLeft(next)
}

// Start runs the frame loop until Stop. frameInterval approximates the
// display refresh period.
func (m *Marquee) Start(frameInterval time.Duration) {
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.done:
				return
			case <-ticker.C:
				m.Tick()
			}
		}
	}()
}

// Pause suspends advancing; pointer enter.
func (m *Marquee) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
}

// Resume continues advancing; pointer leave.
func (m *Marquee) Resume() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
}

// Stop cancels the frame loop. Idempotent; the marquee retains no state
// afterwards.
func (m *Marquee) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	close(m.done)
}
