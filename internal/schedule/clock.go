// Package schedule runs repeating tasks against a clock that only moves when
// told to. Frontends advance it from their frame loop with the wall time;
// tests advance it by hand.
package schedule

import "time"

// MaxCatchUp is how many times one task may fire in a single advance before
// its deadline is realigned to the current time.
const MaxCatchUp = 5

// MaxGap is the longest stretch Follow treats as ordinary frame time. Longer
// gaps (window creation, a hidden browser tab) shift the schedule instead of
// replaying the missed firings.
const MaxGap = 250 * time.Millisecond

// TimeProvider is a source of the current time.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the wall clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// Task is a handle to a repeating callback.
type Task struct {
	interval time.Duration
	next     time.Time
	fn       func()
	seq      uint64
	active   bool
	fired    uint64
}

// Cancel stops the task. Safe to call more than once, and from inside any
// task callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.active = false
}

func (t *Task) Active() bool {
	return t != nil && t.active
}

// Fired is the number of times the callback has run.
func (t *Task) Fired() uint64 {
	if t == nil {
		return 0
	}
	return t.fired
}

// Clock owns the virtual time and the task list. It is not safe for
// concurrent use; all calls belong on the loop goroutine.
type Clock struct {
	now   time.Time
	tasks []*Task
	seq   uint64
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	return c.now
}

// Every schedules fn to run each interval, first at Now()+interval.
func (c *Clock) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("schedule: non-positive interval")
	}
	c.seq++
	t := &Task{
		interval: interval,
		next:     c.now.Add(interval),
		fn:       fn,
		seq:      c.seq,
		active:   true,
	}
	c.tasks = append(c.tasks, t)
	return t
}

// Pending is the number of active tasks.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if t.active {
			n++
		}
	}
	return n
}

func (c *Clock) AdvanceBy(d time.Duration) {
	c.AdvanceTo(c.now.Add(d))
}

// AdvanceTo moves time forward to now, running every due task in deadline
// order. Time never moves backwards; an earlier now is ignored.
func (c *Clock) AdvanceTo(now time.Time) {
	if now.Before(c.now) {
		return
	}

	firedPerTask := make(map[*Task]int)
	for {
		t := c.nextDue(now)
		if t == nil {
			break
		}

		c.now = t.next
		t.next = t.next.Add(t.interval)
		firedPerTask[t]++
		if firedPerTask[t] >= MaxCatchUp && !t.next.After(now) {
			t.next = now.Add(t.interval)
		}

		t.fired++
		t.fn()
	}

	c.now = now
	c.compact()
}

// Follow is what a frame loop calls with the wall time. Ordinary frame
// gaps advance the clock; a gap longer than MaxGap resyncs to now. It
// reports whether it resynced.
func (c *Clock) Follow(now time.Time) bool {
	if now.Sub(c.now) > MaxGap {
		c.Resync(now)
		return true
	}
	c.AdvanceTo(now)
	return false
}

// Resync moves time to now without firing anything. Every task keeps the
// offset to its next deadline it had before the jump.
func (c *Clock) Resync(now time.Time) {
	if now.Before(c.now) {
		return
	}
	delta := now.Sub(c.now)
	for _, t := range c.tasks {
		if t.active {
			t.next = t.next.Add(delta)
		}
	}
	c.now = now
	c.compact()
}

func (c *Clock) nextDue(now time.Time) *Task {
	var due *Task
	for _, t := range c.tasks {
		if !t.active || t.next.After(now) {
			continue
		}
		if due == nil || t.next.Before(due.next) || (t.next.Equal(due.next) && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

func (c *Clock) compact() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if t.active {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = live
}
