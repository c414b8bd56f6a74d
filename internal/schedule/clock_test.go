package schedule

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEveryFiresOnInterval(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	task := c.Every(100*time.Millisecond, func() { count++ })

	c.AdvanceBy(99 * time.Millisecond)
	if count != 0 {
		t.Errorf("Expected no fire before the first interval, got %d", count)
	}

	c.AdvanceBy(1 * time.Millisecond)
	if count != 1 {
		t.Errorf("Expected 1 fire at the first interval, got %d", count)
	}

	c.AdvanceBy(250 * time.Millisecond)
	if count != 3 {
		t.Errorf("Expected 3 fires at 350ms, got %d", count)
	}
	if task.Fired() != 3 {
		t.Errorf("Expected Fired()=3, got %d", task.Fired())
	}
	if !c.Now().Equal(epoch.Add(350 * time.Millisecond)) {
		t.Errorf("Expected clock at 350ms, got %v", c.Now().Sub(epoch))
	}
}

func TestTasksFireInDeadlineOrder(t *testing.T) {
	c := NewClock(epoch)
	var order []string
	c.Every(30*time.Millisecond, func() { order = append(order, "a") })
	c.Every(20*time.Millisecond, func() { order = append(order, "b") })

	c.AdvanceBy(60 * time.Millisecond)

	// b@20 a@30 b@40 a@60 b@60 (ties go to the earlier-registered task)
	want := []string{"b", "a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s (full %v)", i, want[i], order[i], order)
		}
	}
}

func TestCancelStopsTask(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	task := c.Every(10*time.Millisecond, func() { count++ })

	c.AdvanceBy(25 * time.Millisecond)
	task.Cancel()
	task.Cancel()
	c.AdvanceBy(100 * time.Millisecond)

	if count != 2 {
		t.Errorf("Expected 2 fires before cancel, got %d", count)
	}
	if task.Active() {
		t.Error("Expected cancelled task to be inactive")
	}
	if c.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", c.Pending())
	}
}

func TestCancelFromOwnCallback(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	var task *Task
	task = c.Every(10*time.Millisecond, func() {
		count++
		task.Cancel()
	})

	c.AdvanceBy(100 * time.Millisecond)
	if count != 1 {
		t.Errorf("Expected exactly 1 fire, got %d", count)
	}
}

func TestCancelFromOtherCallback(t *testing.T) {
	c := NewClock(epoch)
	victimFired := 0
	var victim *Task
	c.Every(10*time.Millisecond, func() { victim.Cancel() })
	victim = c.Every(10*time.Millisecond, func() { victimFired++ })

	c.AdvanceBy(50 * time.Millisecond)
	if victimFired != 0 {
		t.Errorf("Expected victim never to fire, got %d", victimFired)
	}
}

func TestReplaceTaskInsideCallback(t *testing.T) {
	c := NewClock(epoch)
	oldFired, newFired := 0, 0
	var current *Task
	current = c.Every(10*time.Millisecond, func() {
		oldFired++
		current.Cancel()
		current = c.Every(10*time.Millisecond, func() { newFired++ })
	})

	c.AdvanceBy(35 * time.Millisecond)
	if oldFired != 1 {
		t.Errorf("Expected old task to fire once, got %d", oldFired)
	}
	if newFired != 2 {
		t.Errorf("Expected new task to fire at 20ms and 30ms, got %d", newFired)
	}
}

func TestCatchUpIsCapped(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	c.Every(10*time.Millisecond, func() { count++ })

	c.AdvanceBy(time.Second)
	if count != MaxCatchUp {
		t.Errorf("Expected catch-up capped at %d, got %d", MaxCatchUp, count)
	}

	c.AdvanceBy(10 * time.Millisecond)
	if count != MaxCatchUp+1 {
		t.Errorf("Expected cadence to resume from the stall, got %d", count)
	}
}

func TestFollowResyncsAfterLongGap(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	c.Every(60*time.Millisecond, func() { count++ })

	// A window that took 800ms to open must not replay any ticks.
	if !c.Follow(epoch.Add(800 * time.Millisecond)) {
		t.Error("Expected Follow to resync after an 800ms gap")
	}
	if count != 0 {
		t.Errorf("Expected no fires across the gap, got %d", count)
	}
	if !c.Now().Equal(epoch.Add(800 * time.Millisecond)) {
		t.Errorf("Expected clock at 800ms, got %v", c.Now().Sub(epoch))
	}

	if c.Follow(epoch.Add(859 * time.Millisecond)) {
		t.Error("Expected a short frame gap to advance normally")
	}
	if count != 0 {
		t.Errorf("Expected the shifted deadline not yet reached, got %d fires", count)
	}

	c.Follow(epoch.Add(860 * time.Millisecond))
	if count != 1 {
		t.Errorf("Expected one fire a full interval after the resync, got %d", count)
	}
}

func TestFollowAdvancesShortGaps(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	c.Every(60*time.Millisecond, func() { count++ })

	for i := 1; i <= 10; i++ {
		c.Follow(epoch.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	if count != 2 {
		t.Errorf("Expected 2 fires in 160ms of 16ms frames, got %d", count)
	}
}

func TestResyncKeepsCancelledTasksDead(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	task := c.Every(10*time.Millisecond, func() { count++ })
	task.Cancel()

	c.Resync(epoch.Add(time.Second))
	c.AdvanceBy(100 * time.Millisecond)
	if count != 0 || c.Pending() != 0 {
		t.Errorf("Expected cancelled task to stay cancelled, got %d fires, %d pending", count, c.Pending())
	}
}

func TestAdvanceBackwardsIgnored(t *testing.T) {
	c := NewClock(epoch)
	count := 0
	c.Every(10*time.Millisecond, func() { count++ })

	c.AdvanceTo(epoch.Add(-time.Second))
	if !c.Now().Equal(epoch) {
		t.Errorf("Expected clock to stay at epoch, got %v", c.Now())
	}
	if count != 0 {
		t.Errorf("Expected no fires, got %d", count)
	}
}

func TestSystemTimeMovesForward(t *testing.T) {
	var p TimeProvider = SystemTime{}
	t1 := p.Now()
	time.Sleep(time.Millisecond)
	if !p.Now().After(t1) {
		t.Error("Expected system time to advance")
	}
}
