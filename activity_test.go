package zoom

import (
	"testing"
	"time"
)

func TestActivityFuncsNilStepEnds(t *testing.T) {
	a := &ActivityFuncs{}
	a.Started()
	if a.Step(0) {
		t.Error("nil OnStep should end the activity")
	}
	a.Finished()
}

func TestInterpolatingActivityRatios(t *testing.T) {
	var ratios []float64
	finished := false
	a := &InterpolatingActivity{
		Duration:    100 * time.Millisecond,
		Interpolate: func(r float64) { ratios = append(ratios, r) },
		OnFinished:  func() { finished = true },
	}
	if !a.Step(0) || !a.Step(50*time.Millisecond) {
		t.Fatal("activity ended early")
	}
	if a.Step(100 * time.Millisecond) {
		t.Error("activity should end once elapsed reaches duration")
	}
	a.Finished()
	if len(ratios) != 2 || ratios[0] != 0 || ratios[1] != 0.5 {
		t.Errorf("ratios = %v, want [0 0.5]", ratios)
	}
	if !finished {
		t.Error("OnFinished not called")
	}
}

func TestInterpolatingActivityDefaultDuration(t *testing.T) {
	a := &InterpolatingActivity{}
	if !a.Step(DefaultActivityDuration - time.Millisecond) {
		t.Error("should still run just before the default duration")
	}
	if a.Step(DefaultActivityDuration) {
		t.Error("should end at the default duration")
	}
}

func TestTransformActivityEndsExactlyAtTarget(t *testing.T) {
	clock := newManualClock()
	r := NewRootWithScheduler(NewScheduler(0, clock.Now))
	n := NewNode("n")
	r.AddChild(n)

	target := Transform{0.3, 0.1, -0.1, 0.3, 123.456, -7.89}
	n.AnimateToTransform(target, 100*time.Millisecond, InOutExpo)
	s := r.Scheduler()

	s.Step(clock.Now())
	if n.Transform() != Identity() {
		t.Errorf("first step should leave the source: %v", n.Transform())
	}
	s.Step(clock.Advance(50 * time.Millisecond))
	mid := n.Transform()
	if mid == Identity() || mid == target {
		t.Errorf("midpoint = %v", mid)
	}
	s.Step(clock.Advance(50 * time.Millisecond))
	if n.Transform() != target {
		t.Errorf("final transform = %v, want exactly %v", n.Transform(), target)
	}
	if s.Running() {
		t.Error("scheduler should be idle")
	}
}

func TestTransformActivityReplacesSameNode(t *testing.T) {
	clock := newManualClock()
	r := NewRootWithScheduler(NewScheduler(0, clock.Now))
	n := NewNode("n")
	r.AddChild(n)

	n.AnimateToTransform(Identity().TranslateBy(100, 0), time.Second, nil)
	n.AnimateToTransform(Identity().TranslateBy(0, 100), time.Second, nil)
	if r.Scheduler().Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Scheduler().Len())
	}
	s := r.Scheduler()
	s.Step(clock.Now())
	s.Step(clock.Advance(time.Second))
	if n.Offset() != (Vec2{0, 100}) {
		t.Errorf("offset = %v, want the second target", n.Offset())
	}
}

func TestAnimateToTransformDetached(t *testing.T) {
	n := NewNode("n")
	target := Identity().ScaleBy(2)
	if id := n.AnimateToTransform(target, time.Second, nil); !id.IsZero() {
		t.Error("detached node should not schedule")
	}
	if n.Transform() != target {
		t.Errorf("transform = %v", n.Transform())
	}
}

func TestViewTransformActivitySnapsAndReportsTarget(t *testing.T) {
	c := NewCamera(NewBounds(0, 0, 10, 10))
	target := Identity().ScaleBy(4).TranslateBy(1, 2)
	a := NewViewTransformActivity(c, target, 10*time.Millisecond, nil)
	if a.Target() != any(c) {
		t.Error("Target should be the camera")
	}
	a.Started()
	a.Step(5 * time.Millisecond)
	assertMatrix(t, "mid view", c.ViewTransform(), Lerp(Identity(), target, 0.5))
	a.Finished()
	if c.ViewTransform() != target {
		t.Errorf("view = %v", c.ViewTransform())
	}
}
