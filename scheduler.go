package zoom

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPollInterval is the minimum time between scheduler passes.
const DefaultPollInterval = 25 * time.Millisecond

// ActivityID identifies a scheduled activity. The zero value is returned
// when nothing was scheduled.
type ActivityID uuid.UUID

// IsZero reports whether id is the zero ActivityID.
func (id ActivityID) IsZero() bool {
	return id == ActivityID{}
}

func (id ActivityID) String() string {
	return uuid.UUID(id).String()
}

// Clock returns the current time. Schedulers take one so tests can drive
// time by hand.
type Clock func() time.Time

type scheduledActivity struct {
	id       ActivityID
	activity Activity
	start    time.Time
	started  bool
	removed  bool
}

// Scheduler runs activities on a fixed polling interval. It never spawns
// goroutines: the host calls Tick once per frame and the scheduler decides
// whether a pass is due.
type Scheduler struct {
	interval time.Duration
	clock    Clock

	entries  []*scheduledActivity
	running  bool
	stepping bool

	lastStep time.Time
	stepped  bool
}

// NewScheduler creates a scheduler. A non-positive interval steps on every
// Tick; a nil clock is time.Now.
func NewScheduler(interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{interval: interval, clock: clock}
}

// Now returns the scheduler clock's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock()
}

// Interval returns the polling interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Schedule adds a starting now.
func (s *Scheduler) Schedule(a Activity) ActivityID {
	return s.ScheduleAt(a, s.clock())
}

// ScheduleAt adds a to start at the given time. Until then it stays
// pending and receives no callbacks. If a implements Targeter, any
// activity already scheduled for the same target is dropped.
func (s *Scheduler) ScheduleAt(a Activity, start time.Time) ActivityID {
	if t, ok := a.(Targeter); ok {
		target := t.Target()
		for _, e := range s.entries {
			if e.removed {
				continue
			}
			if other, ok := e.activity.(Targeter); ok && other.Target() == target {
				e.removed = true
				Logger().WithField("activity", e.id).Debug("activity replaced")
			}
		}
	}

	e := &scheduledActivity{
		id:       ActivityID(uuid.New()),
		activity: a,
		start:    start,
	}
	s.entries = append(s.entries, e)
	if !s.stepping {
		s.compact()
	}
	if !s.running {
		s.running = true
		s.stepped = false
		Logger().WithField("interval", s.interval).Debug("scheduler started")
	}
	return e.id
}

// Cancel drops the activity with the given id without calling Finished.
// Reports whether it was found.
func (s *Scheduler) Cancel(id ActivityID) bool {
	for _, e := range s.entries {
		if e.id == id && !e.removed {
			e.removed = true
			if !s.stepping {
				s.compact()
				s.stopIfIdle()
			}
			return true
		}
	}
	return false
}

// Len returns the number of pending and active activities.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Running reports whether the scheduler has work and expects Tick calls.
func (s *Scheduler) Running() bool {
	return s.running
}

// Tick runs one pass if the scheduler is running and at least one polling
// interval has passed since the previous pass. Reports whether a pass ran.
func (s *Scheduler) Tick(now time.Time) bool {
	if !s.running {
		return false
	}
	if s.stepped && now.Sub(s.lastStep) < s.interval {
		return false
	}
	s.Step(now)
	return true
}

// Step runs one unconditional pass over every activity in schedule order.
// Activities scheduled from inside a callback join the next pass. now never
// moves backwards across passes, so elapsed times are non-decreasing.
func (s *Scheduler) Step(now time.Time) {
	if s.stepped && now.Before(s.lastStep) {
		now = s.lastStep
	}
	s.lastStep = now
	s.stepped = true

	s.stepping = true
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.removed || now.Before(e.start) {
			continue
		}
		if !e.started {
			e.started = true
			e.activity.Started()
			if e.removed {
				continue
			}
		}
		if !e.activity.Step(now.Sub(e.start)) {
			e.removed = true
			e.activity.Finished()
		}
	}
	s.stepping = false

	s.compact()
	s.stopIfIdle()
}

func (s *Scheduler) compact() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.removed {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
}

func (s *Scheduler) stopIfIdle() {
	if len(s.entries) == 0 && s.running {
		s.running = false
		Logger().WithFields(logrus.Fields{"last": s.lastStep}).Debug("scheduler idle")
	}
}
