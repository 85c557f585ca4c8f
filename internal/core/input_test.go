package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionQuit)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 actions (ActionNone dropped), got %d", len(f.Actions))
	}

	dirs := f.Directions()
	if len(dirs) != 2 || dirs[0] != DirUp || dirs[1] != DirLeft {
		t.Errorf("Directions() = %v, expected [up left]", dirs)
	}

	if !f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be true")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionRight) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionQuit, DirRight, false},
		{ActionNone, DirRight, false},
	}
	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			d, ok := tc.action.Direction()
			if ok != tc.ok || (ok && d != tc.dir) {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", d, ok, tc.dir, tc.ok)
			}
		})
	}
}
