package zoom

import "time"

// Root is the topmost node of a scene. It owns the activity scheduler and
// the repaint-dirty flag every node in its tree reports to.
type Root struct {
	*Node

	scheduler  *Scheduler
	needsPaint bool
}

// NewRoot creates a root with a scheduler polling at the default interval
// against the wall clock.
func NewRoot() *Root {
	return NewRootWithScheduler(NewScheduler(DefaultPollInterval, time.Now))
}

// NewRootWithScheduler creates a root that schedules activities on s.
func NewRootWithScheduler(s *Scheduler) *Root {
	r := &Root{
		Node:       newNode("root", NodeTypeRoot),
		scheduler:  s,
		needsPaint: true,
	}
	r.Node.handle = r
	r.Node.scene = r
	return r
}

// Scheduler returns the root's activity scheduler.
func (r *Root) Scheduler() *Scheduler {
	return r.scheduler
}

// Schedule adds a to the root's scheduler.
func (r *Root) Schedule(a Activity) ActivityID {
	return r.scheduler.Schedule(a)
}

// NeedsPaint reports whether anything in the tree changed since the last
// MarkPainted.
func (r *Root) NeedsPaint() bool {
	return r.needsPaint
}

// MarkPainted clears the repaint-dirty flag.
func (r *Root) MarkPainted() {
	r.needsPaint = false
}

// SetDebugMode enables or disables debug mode for every scene. When
// enabled, tree depth and child count warnings are logged and each repaint
// logs its timing.
func (r *Root) SetDebugMode(enabled bool) {
	SetDebugMode(enabled)
}
