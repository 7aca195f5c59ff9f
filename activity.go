package zoom

import "time"

// Activity is a unit of time-stepped work run by a Scheduler.
//
// Started fires once, on the first tick at or after the activity's start
// time. Step then fires on that tick and every following one with the time
// elapsed since the start; returning false ends the activity, after which
// Finished fires exactly once.
type Activity interface {
	Started()
	Step(elapsed time.Duration) bool
	Finished()
}

// Targeter is implemented by activities that animate a single resource.
// Scheduling one replaces any pending or running activity with the same
// target; the displaced activity is dropped without Finished.
type Targeter interface {
	Target() any
}

// ActivityFuncs adapts plain functions to Activity. Nil OnStarted and
// OnFinished are no-ops; a nil OnStep ends the activity on its first tick.
type ActivityFuncs struct {
	OnStarted  func()
	OnStep     func(elapsed time.Duration) bool
	OnFinished func()
}

func (a *ActivityFuncs) Started() {
	if a.OnStarted != nil {
		a.OnStarted()
	}
}

func (a *ActivityFuncs) Step(elapsed time.Duration) bool {
	if a.OnStep == nil {
		return false
	}
	return a.OnStep(elapsed)
}

func (a *ActivityFuncs) Finished() {
	if a.OnFinished != nil {
		a.OnFinished()
	}
}

// DefaultActivityDuration is used by an InterpolatingActivity with no
// Duration set.
const DefaultActivityDuration = time.Second

// InterpolatingActivity runs for a fixed Duration and reports progress as a
// ratio in [0, 1). It ends on the first tick whose elapsed time reaches the
// duration, so Interpolate never sees 1; OnFinished is where an animation
// snaps to its exact end state.
type InterpolatingActivity struct {
	Duration    time.Duration
	Interpolate func(ratio float64)
	OnStarted   func()
	OnFinished  func()
}

func (a *InterpolatingActivity) Started() {
	if a.OnStarted != nil {
		a.OnStarted()
	}
}

func (a *InterpolatingActivity) Step(elapsed time.Duration) bool {
	d := a.Duration
	if d <= 0 {
		d = DefaultActivityDuration
	}
	if elapsed >= d {
		return false
	}
	if a.Interpolate != nil {
		a.Interpolate(float64(elapsed) / float64(d))
	}
	return true
}

func (a *InterpolatingActivity) Finished() {
	if a.OnFinished != nil {
		a.OnFinished()
	}
}

// TransformActivity eases a node's local transform from its value at
// construction to a target.
type TransformActivity struct {
	InterpolatingActivity

	node   *Node
	source Transform
	target Transform
	easing Easing
}

// NewTransformActivity captures node's current transform as the source. A
// nil easing is Linear.
func NewTransformActivity(node *Node, target Transform, duration time.Duration, easing Easing) *TransformActivity {
	if easing == nil {
		easing = Linear
	}
	a := &TransformActivity{
		node:   node,
		source: node.transform,
		target: target,
		easing: easing,
	}
	a.Duration = duration
	a.Interpolate = a.interpolate
	return a
}

func (a *TransformActivity) interpolate(ratio float64) {
	a.node.SetTransform(Lerp(a.source, a.target, a.easing(ratio)))
}

// Finished snaps the node to the exact target.
func (a *TransformActivity) Finished() {
	a.node.SetTransform(a.target)
	a.InterpolatingActivity.Finished()
}

// Target returns the animated node.
func (a *TransformActivity) Target() any {
	return a.node
}

// ViewTransformActivity eases a camera's view transform from its value at
// construction to a target.
type ViewTransformActivity struct {
	InterpolatingActivity

	camera *Camera
	source Transform
	target Transform
	easing Easing
}

// NewViewTransformActivity captures the camera's current view as the source.
// A nil easing is Linear.
func NewViewTransformActivity(c *Camera, target Transform, duration time.Duration, easing Easing) *ViewTransformActivity {
	if easing == nil {
		easing = Linear
	}
	a := &ViewTransformActivity{
		camera: c,
		source: c.viewTransform,
		target: target,
		easing: easing,
	}
	a.Duration = duration
	a.Interpolate = a.interpolate
	return a
}

func (a *ViewTransformActivity) interpolate(ratio float64) {
	a.camera.SetViewTransform(Lerp(a.source, a.target, a.easing(ratio)))
}

// Finished snaps the view to the exact target.
func (a *ViewTransformActivity) Finished() {
	a.camera.SetViewTransform(a.target)
	a.InterpolatingActivity.Finished()
}

// Target returns the animated camera.
func (a *ViewTransformActivity) Target() any {
	return a.camera
}

// AnimateToTransform eases the node's transform to target on its root's
// scheduler. A zero duration or a node outside any root sets it immediately.
func (n *Node) AnimateToTransform(target Transform, duration time.Duration, easing Easing) ActivityID {
	root := n.Root()
	if duration <= 0 || root == nil {
		n.SetTransform(target)
		return ActivityID{}
	}
	return root.Schedule(NewTransformActivity(n, target, duration, easing))
}
