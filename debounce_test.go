package zoom

import (
	"testing"
	"time"
)

func newTestDebouncer(wait time.Duration) (*debouncer, *Scheduler, *manualClock, *[]string) {
	clock := newManualClock()
	s := NewScheduler(0, clock.Now)
	var calls []string
	d := newDebouncer(func() *Scheduler { return s }, wait, func(n *Node) {
		if n == nil {
			calls = append(calls, "<nil>")
			return
		}
		calls = append(calls, n.Name)
	})
	return d, s, clock, &calls
}

func TestDebounceSingleCallRunsImmediately(t *testing.T) {
	d, s, clock, calls := newTestDebouncer(200 * time.Millisecond)
	d.call(NewNode("a"))
	assertLog(t, *calls, "a")

	s.Step(clock.Now())
	s.Step(clock.Advance(200 * time.Millisecond))
	assertLog(t, *calls, "a")
	if s.Running() {
		t.Error("debounce activity should end after the quiet period")
	}
}

func TestDebounceBurstRunsFirstAndLast(t *testing.T) {
	d, s, clock, calls := newTestDebouncer(200 * time.Millisecond)
	d.call(NewNode("a"))
	s.Step(clock.Now())

	clock.Advance(50 * time.Millisecond)
	d.call(NewNode("b"))
	s.Step(clock.Now())
	clock.Advance(50 * time.Millisecond)
	d.call(NewNode("c"))
	s.Step(clock.Now())
	assertLog(t, *calls, "a")
	if !d.pending() {
		t.Fatal("trailing call should be pending")
	}

	// Quiet period restarts at the last call.
	s.Step(clock.Advance(150 * time.Millisecond))
	assertLog(t, *calls, "a")
	s.Step(clock.Advance(50 * time.Millisecond))
	assertLog(t, *calls, "a", "c")
	if d.pending() {
		t.Error("trailing call still pending")
	}
}

func TestDebounceRearmsAfterQuiet(t *testing.T) {
	d, s, clock, calls := newTestDebouncer(100 * time.Millisecond)
	d.call(NewNode("a"))
	s.Step(clock.Now())
	s.Step(clock.Advance(100 * time.Millisecond))

	clock.Advance(time.Second)
	d.call(NewNode("b"))
	assertLog(t, *calls, "a", "b")
}

func TestDebounceWithoutSchedulerRunsEveryCall(t *testing.T) {
	var calls []string
	d := newDebouncer(func() *Scheduler { return nil }, 200*time.Millisecond, func(n *Node) {
		calls = append(calls, n.Name)
	})
	d.call(NewNode("a"))
	d.call(NewNode("b"))
	d.call(NewNode("c"))
	assertLog(t, calls, "a", "b", "c")
	if d.pending() {
		t.Error("nothing should be pending without a scheduler")
	}
}
