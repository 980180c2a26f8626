package tui

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// tickHolds runs one tick of the tracker and returns the releases it emitted.
func tickHolds(h *HoldTracker, pressed ...core.Action) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range pressed {
		h.Press(a)
		frame.Set(a)
	}
	h.Expire(&frame)
	return frame
}

func TestHoldTrackerReleaseAfterHoldTicks(t *testing.T) {
	h := NewHoldTracker(3, 3)

	frame := tickHolds(h, core.ActionLeft)
	if frame.WasReleased(core.ActionLeft) {
		t.Fatal("key should not be released in the frame it was pressed")
	}

	for i := 1; i <= 2; i++ {
		frame = tickHolds(h)
		if frame.WasReleased(core.ActionLeft) {
			t.Fatalf("released early after %d idle ticks", i)
		}
		if !h.Held(core.ActionLeft) {
			t.Fatalf("key should still be held after %d idle ticks", i)
		}
	}

	frame = tickHolds(h)
	if !frame.WasReleased(core.ActionLeft) {
		t.Error("expected release after 3 idle ticks")
	}
	if h.Held(core.ActionLeft) {
		t.Error("key should no longer be held")
	}

	frame = tickHolds(h)
	if frame.WasReleased(core.ActionLeft) {
		t.Error("release should be emitted only once")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(2, 2)

	tickHolds(h, core.ActionUp)
	for i := 0; i < 10; i++ {
		// Auto-repeat every other tick keeps the key down
		var frame core.InputFrame
		if i%2 == 0 {
			frame = tickHolds(h, core.ActionUp)
		} else {
			frame = tickHolds(h)
		}
		if frame.WasReleased(core.ActionUp) {
			t.Fatalf("released during auto-repeat at tick %d", i)
		}
	}
}

func TestHoldTrackerOppositeCancelsSilently(t *testing.T) {
	h := NewHoldTracker(2, 2)

	tickHolds(h, core.ActionLeft)
	tickHolds(h, core.ActionRight)

	if h.Held(core.ActionLeft) {
		t.Error("pressing right should drop the left hold")
	}
	for i := 0; i < 5; i++ {
		if tickHolds(h).WasReleased(core.ActionLeft) {
			t.Fatal("a cancelled hold should never emit a release")
		}
	}
}

func TestHoldTrackerIgnoresNonMovement(t *testing.T) {
	h := NewHoldTracker(2, 2)

	tickHolds(h, core.ActionFire, core.ActionPause)

	if h.Held(core.ActionFire) || h.Held(core.ActionPause) {
		t.Error("only movement keys are tracked")
	}
}

func TestHoldTrackerIndependentAxes(t *testing.T) {
	h := NewHoldTracker(2, 2)

	tickHolds(h, core.ActionLeft, core.ActionUp)
	tickHolds(h, core.ActionUp)
	frame := tickHolds(h)

	if !frame.WasReleased(core.ActionLeft) {
		t.Error("left should expire on its own schedule")
	}
	if frame.WasReleased(core.ActionUp) {
		t.Error("up was repeated and should still be held")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(1, 1)
	tickHolds(h, core.ActionDown)

	h.Reset()

	if tickHolds(h).WasReleased(core.ActionDown) {
		t.Error("reset should drop holds without releases")
	}
}

func TestHoldTrackerMinimumHold(t *testing.T) {
	h := NewHoldTracker(0, 0)

	tickHolds(h, core.ActionRight)
	if !tickHolds(h).WasReleased(core.ActionRight) {
		t.Error("hold ticks below 1 should behave like 1")
	}
}

// typingTimeline presses at tick 0, starts auto-repeat at repeatStart and
// repeats every other tick through lastRepeat.
func typingTimeline(tick, repeatStart, lastRepeat int) bool {
	if tick == 0 {
		return true
	}
	return tick >= repeatStart && tick <= lastRepeat && (tick-repeatStart)%2 == 0
}

func TestHoldTrackerBridgesRepeatDelay(t *testing.T) {
	// 500 ms repeat delay, then a repeat every 2 ticks at 60 ticks/s
	h := NewHoldTracker(40, 8)

	var releases []int
	for tick := 0; tick < 120; tick++ {
		var frame core.InputFrame
		if typingTimeline(tick, 30, 90) {
			frame = tickHolds(h, core.ActionLeft)
		} else {
			frame = tickHolds(h)
		}
		if frame.WasReleased(core.ActionLeft) {
			releases = append(releases, tick)
		}
	}

	if len(releases) != 1 || releases[0] != 98 {
		t.Errorf("releases at ticks %v, expected only [98] (8 ticks after the last repeat)", releases)
	}
}

func TestHoldTrackerTapUsesInitialHold(t *testing.T) {
	h := NewHoldTracker(40, 8)

	tickHolds(h, core.ActionRight)
	for i := 1; i < 40; i++ {
		if tickHolds(h).WasReleased(core.ActionRight) {
			t.Fatalf("released after %d ticks, expected the initial hold of 40", i)
		}
	}
	if !tickHolds(h).WasReleased(core.ActionRight) {
		t.Error("expected a release once the initial hold ran out")
	}
}

func TestHoldTrackerInitialNeverShorterThanRepeat(t *testing.T) {
	h := NewHoldTracker(2, 5)

	tickHolds(h, core.ActionUp)
	for i := 1; i < 5; i++ {
		if tickHolds(h).WasReleased(core.ActionUp) {
			t.Fatalf("released after %d ticks, expected at least 5", i)
		}
	}
}
