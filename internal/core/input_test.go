package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Point(12, 7)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has should only report set actions")
	}
	if f.Pointer == nil || *f.Pointer != (Pos{12, 7}) {
		t.Errorf("Pointer = %v, expected (12, 7)", f.Pointer)
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !c.Has(ActionLeft) || c.Pointer == nil {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionCancel.String() != "Cancel" {
		t.Errorf("ActionCancel.String() = %q", ActionCancel.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
