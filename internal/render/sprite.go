// Package render turns shape/color descriptors into drawable handles.
// The simulation core treats handles as opaque: it stores them on entities
// and hands them back for drawing, never inspecting their contents.
package render

import (
	"github.com/JJC3321/BeatDash/internal/core"
)

// Descriptor names a visual asset: a shape keyword plus a palette color
// name. Descriptors come from the generated configuration's enemy types and
// palette; the set of shape keywords here covers what the generator emits.
type Descriptor struct {
	Shape string `yaml:"shape"`
	Color string `yaml:"color"`
}

// Handle is a drawable produced by a Renderer. Phase selects an animation
// frame for handles that rotate on the beat; handles without animation
// ignore it.
type Handle interface {
	Draw(dst *core.Screen, r core.Rect, phase int)
}

// Renderer converts a descriptor and a logical entity size into a drawable
// handle. Size is in play-field pixels and only influences glyph choice.
type Renderer interface {
	Render(d Descriptor, w, h float64) Handle
}

// SpriteRenderer is the built-in renderer: each shape maps to a set of
// frame runes drawn in the descriptor's palette color.
type SpriteRenderer struct{}

// Render builds a sprite for the descriptor.
func (SpriteRenderer) Render(d Descriptor, w, h float64) Handle {
	return &Sprite{
		frames: shapeFrames(d.Shape),
		color:  core.ColorByName(d.Color),
	}
}

func shapeFrames(shape string) []rune {
	switch shape {
	case "circle":
		return []rune{'●'}
	case "diamond":
		return []rune{'◆', '◇'}
	case "triangle", "spike":
		return []rune{'▲'}
	case "star":
		return []rune{'✦', '✧'}
	case "coin":
		return []rune{'◉', '○'}
	case "block":
		return []rune{'▓'}
	case "square":
		return []rune{'█'}
	default:
		return []rune{'█'}
	}
}

// Sprite is a rune-based drawable filling its screen rectangle with the
// current animation frame.
type Sprite struct {
	frames []rune
	color  core.Color
}

// Draw fills the rectangle with the frame selected by phase.
func (s *Sprite) Draw(dst *core.Screen, r core.Rect, phase int) {
	if len(s.frames) == 0 {
		return
	}
	frame := s.frames[phase%len(s.frames)]
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, frame, s.color)
		}
	}
}
