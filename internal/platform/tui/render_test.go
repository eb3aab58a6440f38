package tui

import (
	"strings"
	"testing"

	"github.com/JJC3321/BeatDash/internal/core"
)

func TestRenderScreenRowsMatchHeight(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.Set(0, 0, '@')
	s.Set(7, 2, '#')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != s.Height() {
		t.Fatalf("rendered %d lines, want %d", len(lines), s.Height())
	}
	if !strings.HasPrefix(lines[0], "@") {
		t.Errorf("line 0 = %q, want leading '@'", lines[0])
	}
	if !strings.HasSuffix(lines[2], "#") {
		t.Errorf("line 2 = %q, want trailing '#'", lines[2])
	}
}

func TestRenderScreenGroupsColorRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	for x := range 4 {
		s.Set(x, 0, rune('a'+x))
	}

	// A single default-color run renders with no escape sequences.
	if out := RenderScreen(s); out != "abcd" {
		t.Errorf("RenderScreen() = %q, want %q", out, "abcd")
	}
}
