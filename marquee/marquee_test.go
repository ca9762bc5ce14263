package marquee

import "testing"

type fakeSurface struct {
	width float64
	left  float64
}

func (s *fakeSurface) ScrollWidth() float64  { return s.width }
func (s *fakeSurface) ScrollLeft() float64   { return s.left }
func (s *fakeSurface) SetScrollLeft(v float64) { s.left = v }

func TestTickAdvances(t *testing.T) {
	surface := &fakeSurface{width: 1000}
	m := New(surface, 2)

	m.Tick()
	m.Tick()
	if surface.left != 4 {
		t.Fatalf("expected scrollLeft 4 after two ticks, got %v", surface.left)
	}
}

func TestTickWrapsAtHalfWidth(t *testing.T) {
	surface := &fakeSurface{width: 1000, left: 499}
	m := New(surface, 2)

	m.Tick()
	if surface.left != 0 {
		t.Fatalf("expected reset to 0 within the wrapping tick, got %v", surface.left)
	}

	// Advancing continues seamlessly from the reset position.
	m.Tick()
	if surface.left != 2 {
		t.Fatalf("expected scrollLeft 2 after wrap, got %v", surface.left)
	}
}

func TestTickWrapsExactlyAtBoundary(t *testing.T) {
	surface := &fakeSurface{width: 1000, left: 498}
	m := New(surface, 2)

	m.Tick()
	if surface.left != 0 {
		t.Fatalf("expected reset when the advance lands on the boundary, got %v", surface.left)
	}
}

func TestPauseAndResume(t *testing.T) {
	surface := &fakeSurface{width: 1000, left: 10}
	m := New(surface, 2)

	m.Pause()
	m.Tick()
	m.Tick()
	if surface.left != 10 {
		t.Fatalf("paused marquee moved to %v", surface.left)
	}

	m.Resume()
	m.Tick()
	if surface.left != 12 {
		t.Fatalf("expected scrollLeft 12 after resume, got %v", surface.left)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	surface := &fakeSurface{width: 1000, left: 10}
	m := New(surface, 2)

	m.Stop()
	m.Stop()

	m.Tick()
	if surface.left != 10 {
		t.Fatalf("stopped marquee moved to %v", surface.left)
	}
}
