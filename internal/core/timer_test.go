package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFiresImmediately(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second ShouldStep without elapsed time should not fire")
	}
}

func TestFixedStepPacesTicks(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	fired := 0
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired < 9 || fired > 10 {
		t.Fatalf("expected ~10 ticks over one second at 10 TPS, got %d", fired)
	}
}

func TestFixedStepAtMostOnePerCall(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after a long stall")
	}
	if !fs.ShouldStep() {
		t.Fatal("expected the capped backlog to allow one catch-up tick")
	}
	if fs.ShouldStep() {
		t.Fatal("backlog beyond one step must be dropped")
	}
}

func TestFixedStepRestart(t *testing.T) {
	fs, clock := newTestStep(4)
	fs.ShouldStep()
	clock.advance(10 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("tick should not fire before the interval elapses")
	}
	fs.Restart()
	if !fs.ShouldStep() {
		t.Fatal("tick should fire right after Restart")
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("non-positive TPS should fall back to 60, got interval %v", got)
	}
	fs.SetTPS(10)
	if got := fs.Interval(); got != 100*time.Millisecond {
		t.Fatalf("expected 100ms interval, got %v", got)
	}
}
