package core

// Action is a semantic game action, abstracted from physical keys and mouse
// buttons so games never see terminal events.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Space, Enter, left click - slash / menu select
	ActionCancel         // C - drop the current aim
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionCancel:  "Cancel",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Pos is a screen cell position.
type Pos struct {
	X, Y int
}

// InputFrame is everything the player did during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the last mouse position seen this tick, in screen cells.
	// Nil when the mouse did not move.
	Pointer *Pos
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Point records a mouse position.
func (f *InputFrame) Point(x, y int) {
	f.Pointer = &Pos{X: x, Y: y}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Pointer == nil
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = nil
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		c.Pointer = &p
	}
	return c
}
