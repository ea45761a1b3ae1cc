package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space, Up - start, restart, jump
	ActionQuit           // Esc, Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
//
// Pressed holds edge-triggered actions (went down since the previous tick).
// Held holds level-triggered actions (down right now). A pressed action is
// always also held.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as pressed (and held) for this frame.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Held[a] = true
}

// IsPressed returns true if the action went down this frame.
func (f InputFrame) IsPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// IsHeld returns true if the action is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}

// Edges turns per-tick key levels into input frames: an action that is down
// now but was not down on the previous tick is pressed, otherwise held.
type Edges struct {
	prev map[Action]bool
}

// NewEdges creates an edge tracker with nothing down.
func NewEdges() *Edges {
	return &Edges{prev: make(map[Action]bool)}
}

// Frame builds the input frame for the actions currently down.
func (e *Edges) Frame(down map[Action]bool) InputFrame {
	f := NewInputFrame()
	for a, d := range down {
		if !d {
			continue
		}
		if e.prev[a] {
			f.Hold(a)
		} else {
			f.Press(a)
		}
	}
	clear(e.prev)
	for a, d := range down {
		if d {
			e.prev[a] = true
		}
	}
	return f
}
