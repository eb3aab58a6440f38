package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JJC3321/BeatDash/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperDirectionDecay(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.HandleKey(keyMsg("a"), &frame); quit {
		t.Fatal("movement key reported as quit")
	}

	// Held for heldTicks ticks, then released.
	for i := 0; i < heldTicks; i++ {
		km.TickHeld(&frame)
		if !frame.Held(core.ActionLeft) {
			t.Fatalf("tick %d: left not held", i)
		}
	}
	km.TickHeld(&frame)
	if frame.Held(core.ActionLeft) {
		t.Error("left still held after decay window")
	}
}

func TestKeyMapperRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.HandleKey(keyMsg("d"), &frame)
	for i := 0; i < heldTicks/2; i++ {
		km.TickHeld(&frame)
	}
	// Key repeat arrives mid-decay.
	km.HandleKey(keyMsg("d"), &frame)
	for i := 0; i < heldTicks; i++ {
		km.TickHeld(&frame)
		if !frame.Held(core.ActionRight) {
			t.Fatalf("tick %d after repeat: right not held", i)
		}
	}
}

func TestKeyMapperEdgesSurviveTick(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.HandleKey(keyMsg(" "), &frame)
	km.TickHeld(&frame)
	if !frame.Pressed(core.ActionJump) {
		t.Error("jump edge lost by held-state rebuild")
	}
	frame.ClearPressed()
	if frame.Pressed(core.ActionJump) {
		t.Error("jump edge not consumed")
	}
}

func TestKeyMapperUpDoublesAsJump(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.HandleKey(keyMsg("w"), &frame)
	km.TickHeld(&frame)
	if !frame.Held(core.ActionUp) {
		t.Error("w did not hold up")
	}
	if !frame.Pressed(core.ActionJump) {
		t.Error("w did not press jump")
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if !km.HandleKey(keyMsg("q"), &frame) {
		t.Error("q not treated as quit")
	}
	if !km.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c not treated as quit")
	}
}
