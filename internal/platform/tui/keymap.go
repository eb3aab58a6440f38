package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JJC3321/BeatDash/internal/core"
)

// heldTicks is how many simulation ticks a direction key stays held after
// a key event. Terminals only deliver discrete key repeats, so held state
// is emulated by keeping the direction active briefly after each repeat.
const heldTicks = 8

// KeyMapper translates Bubble Tea key messages into input frame state.
// Directions become held state with repeat-based decay; everything else
// is an edge press.
type KeyMapper struct {
	ttl map[core.Action]int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		ttl: make(map[core.Action]int),
	}
}

// HandleKey applies a key message to the input frame.
// Returns true for quit requests.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "left", "a", "h":
		km.ttl[core.ActionLeft] = heldTicks
	case "right", "d", "l":
		km.ttl[core.ActionRight] = heldTicks
	case "up", "w", "k":
		// Up doubles as jump so gravity modes work without the spacebar.
		km.ttl[core.ActionUp] = heldTicks
		frame.Press(core.ActionJump)
	case "down", "s", "j":
		km.ttl[core.ActionDown] = heldTicks
	case " ":
		frame.Press(core.ActionJump)
	case "p", "esc":
		frame.Press(core.ActionPause)
	case "r":
		frame.Press(core.ActionRestart)
	}
	return false
}

// TickHeld rebuilds the frame's held direction state for the next tick and
// runs down the repeat timers. Edge presses accumulated since the last
// tick are preserved.
func (km *KeyMapper) TickHeld(frame *core.InputFrame) {
	frame.ClearHeld()
	for action, left := range km.ttl {
		if left <= 0 {
			delete(km.ttl, action)
			continue
		}
		frame.Hold(action)
		km.ttl[action] = left - 1
	}
}

// Reset drops all held state, used on restart.
func (km *KeyMapper) Reset() {
	km.ttl = make(map[core.Action]int)
}
