package core

// Action represents a semantic game action, abstracted from physical key
// presses. Directions are sampled as held state, everything else as a
// just-pressed edge for the current tick.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move left (held)
	ActionRight          // Move right (held)
	ActionUp             // Move up (held)
	ActionDown           // Move down (held)
	ActionJump           // Jump impulse (edge-triggered)
	ActionPause          // Pause/unpause
	ActionRestart        // Restart after game over
	ActionQuit           // Exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sample for a single simulation tick: a boolean
// held state per direction plus just-pressed edges for everything else.
// The platform layer builds one per tick; controllers only read it.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as just pressed this frame.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
}

// Held returns true if the action is held during this frame.
func (f InputFrame) Held(a Action) bool {
	if f.held == nil {
		return false
	}
	return f.held[a]
}

// Pressed returns true if the action was just pressed this frame.
func (f InputFrame) Pressed(a Action) bool {
	if f.pressed == nil {
		return false
	}
	return f.pressed[a]
}

// Clear resets all held and pressed state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// ClearHeld drops held directions only, preserving edge state.
func (f *InputFrame) ClearHeld() {
	for k := range f.held {
		delete(f.held, k)
	}
}

// ClearPressed drops edge state only, preserving held directions.
func (f *InputFrame) ClearPressed() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	return clone
}
