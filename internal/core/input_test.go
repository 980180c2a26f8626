package core

import "testing"

func TestInputFramePressAndRelease(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Release(ActionLeft)

	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(Left) should be false, Left was only released")
	}
	if !f.WasReleased(ActionLeft) {
		t.Error("WasReleased(Left) should be true after Release")
	}

	f.Clear()

	if f.Has(ActionFire) || f.WasReleased(ActionLeft) {
		t.Error("Clear should drop pressed and released actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) || f.WasReleased(ActionFire) {
		t.Error("zero frame should report nothing")
	}

	// Set and Release must lazily allocate
	f.Set(ActionUp)
	f.Release(ActionDown)
	if !f.Has(ActionUp) || !f.WasReleased(ActionDown) {
		t.Error("zero frame should accept Set and Release")
	}
}

func TestActionOpposite(t *testing.T) {
	tests := []struct {
		a, expected Action
	}{
		{ActionLeft, ActionRight},
		{ActionRight, ActionLeft},
		{ActionUp, ActionDown},
		{ActionDown, ActionUp},
		{ActionFire, ActionNone},
	}

	for _, tc := range tests {
		if got := tc.a.Opposite(); got != tc.expected {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.a, got, tc.expected)
		}
	}
}

func TestActionIsMovement(t *testing.T) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionUp, ActionDown} {
		if !a.IsMovement() {
			t.Errorf("%s should be a movement action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionFire, ActionPause, ActionRestart, ActionQuit} {
		if a.IsMovement() {
			t.Errorf("%s should not be a movement action", a)
		}
	}
}
