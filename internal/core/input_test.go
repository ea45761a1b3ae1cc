package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionConfirm)

	if !f.IsPressed(ActionConfirm) {
		t.Error("Confirm should be pressed")
	}
	if !f.IsHeld(ActionConfirm) {
		t.Error("pressed action should also be held")
	}
	if f.IsPressed(ActionQuit) || f.IsHeld(ActionQuit) {
		t.Error("Quit should not be set")
	}
}

func TestInputFrameHoldOnly(t *testing.T) {
	var f InputFrame // zero value must be usable
	f.Hold(ActionConfirm)

	if f.IsPressed(ActionConfirm) {
		t.Error("held action should not count as pressed")
	}
	if !f.IsHeld(ActionConfirm) {
		t.Error("Confirm should be held")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionQuit)

	c := f.Clone()
	f.Clear()

	if f.IsHeld(ActionQuit) {
		t.Error("Clear should drop held actions")
	}
	if !c.IsPressed(ActionQuit) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" || ActionQuit.String() != "Quit" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestEdges(t *testing.T) {
	e := NewEdges()
	down := map[Action]bool{ActionConfirm: true}

	f := e.Frame(down)
	if !f.IsPressed(ActionConfirm) {
		t.Error("first tick down should be a press")
	}

	f = e.Frame(down)
	if f.IsPressed(ActionConfirm) || !f.IsHeld(ActionConfirm) {
		t.Error("second tick down should be held only")
	}

	f = e.Frame(map[Action]bool{ActionConfirm: false})
	if f.IsHeld(ActionConfirm) {
		t.Error("released action should not be held")
	}

	f = e.Frame(down)
	if !f.IsPressed(ActionConfirm) {
		t.Error("down again after release should be a press")
	}
}
