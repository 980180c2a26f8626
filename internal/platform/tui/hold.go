package tui

import "github.com/vovakirdan/space-shooter/internal/core"

// HoldTracker turns the key-down stream of a terminal into press/release
// pairs. Terminals never report a key going up, only auto-repeated presses.
// A fresh press stays held for initialTicks, long enough to bridge the
// keyboard's delay before auto-repeat starts. Each repeat then extends the
// hold by holdTicks. The key is released once its hold runs out.
type HoldTracker struct {
	initialTicks int
	holdTicks    int
	remaining    map[core.Action]int
}

// NewHoldTracker creates a tracker. Values below 1 are treated as 1 and
// initialTicks is never shorter than holdTicks.
func NewHoldTracker(initialTicks, holdTicks int) *HoldTracker {
	holdTicks = core.Max(holdTicks, 1)
	return &HoldTracker{
		initialTicks: core.Max(initialTicks, holdTicks),
		holdTicks:    holdTicks,
		remaining:    make(map[core.Action]int),
	}
}

// Press records a press or auto-repeat of a movement action.
// The opposite direction stops being held without a release: the new
// press already overrides that axis, and releasing it later would stop
// the ship mid-move.
func (h *HoldTracker) Press(a core.Action) {
	if !a.IsMovement() {
		return
	}
	if n, held := h.remaining[a]; held {
		h.remaining[a] = core.Max(n, h.holdTicks)
	} else {
		h.remaining[a] = h.initialTicks
	}
	delete(h.remaining, a.Opposite())
}

// Expire counts one tick down for every held key and records the ones that
// ran out as releases in frame. Keys pressed in this frame start counting
// on the next tick.
func (h *HoldTracker) Expire(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if frame.Has(a) {
			continue
		}
		n--
		if n > 0 {
			h.remaining[a] = n
			continue
		}
		delete(h.remaining, a)
		frame.Release(a)
	}
}

// Held reports whether a is currently considered held down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.remaining[a]
	return ok
}

// Reset forgets every held key without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}
