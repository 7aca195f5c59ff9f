package zoom

import "time"

// debouncer collapses bursts of calls. The first call of a burst runs
// immediately; later calls within wait of the previous one only record
// their argument, and the last recorded argument runs once the burst has
// been quiet for wait. Timing rides on a Scheduler so it advances with the
// same clock and Tick as every animation. The scheduler is looked up on each
// call; with none available every call runs immediately.
type debouncer struct {
	wait      time.Duration
	scheduler func() *Scheduler
	fn        func(*Node)

	armed    bool
	armedAt  time.Time
	deadline time.Time

	hasTrailing bool
	trailing    *Node
}

func newDebouncer(scheduler func() *Scheduler, wait time.Duration, fn func(*Node)) *debouncer {
	return &debouncer{wait: wait, scheduler: scheduler, fn: fn}
}

func (d *debouncer) call(n *Node) {
	sched := d.scheduler()
	if sched == nil {
		d.fn(n)
		return
	}
	now := sched.Now()
	if d.armed {
		d.deadline = now.Add(d.wait)
		d.trailing = n
		d.hasTrailing = true
		return
	}

	d.armed = true
	d.armedAt = now
	d.deadline = now.Add(d.wait)
	sched.ScheduleAt(&ActivityFuncs{OnStep: d.step}, now)
	d.fn(n)
}

func (d *debouncer) step(elapsed time.Duration) bool {
	if d.armedAt.Add(elapsed).Before(d.deadline) {
		return true
	}
	d.armed = false
	if d.hasTrailing {
		n := d.trailing
		d.hasTrailing = false
		d.trailing = nil
		d.fn(n)
	}
	return false
}

// pending reports whether a trailing call is waiting for quiet.
func (d *debouncer) pending() bool {
	return d.hasTrailing
}
