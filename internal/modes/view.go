package modes

import (
	"fmt"

	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
)

// Render projects the play field onto the screen buffer: entities scaled
// from field pixels to cells, the beat overlay, camera shake, and the HUD.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	if c.field == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}
	scaleX := float64(w) / FieldW
	scaleY := float64(h) / FieldH
	shakeX, shakeY := c.pulse.ShakeOffset()

	c.drawOverlay(dst)

	for _, e := range c.field.Entities() {
		if !e.Alive() || e.Visual == nil {
			continue
		}
		r := cellRect(e, scaleX, scaleY)
		r.X += shakeX
		r.Y += shakeY
		phase := 0
		if e.Kind == engine.KindCollectible {
			phase = c.pulse.Beats()
		}
		e.Visual.Draw(dst, r, phase)
	}

	c.drawHUD(dst)

	if c.session != nil && c.session.Terminal() {
		c.drawBanner(dst, " GAME OVER ", fmt.Sprintf(" Score: %d  [r]estart  [q]uit ", c.session.Score()))
	} else if c.paused {
		c.drawBanner(dst, " PAUSED ", " Press p to resume ")
	}
}

func cellRect(e *engine.Entity, scaleX, scaleY float64) core.Rect {
	x := int(e.Pos.X * scaleX)
	y := int(e.Pos.Y * scaleY)
	cw := int(e.W * scaleX)
	ch := int(e.H * scaleY)
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	return core.NewRect(x, y, cw, ch)
}

// drawOverlay renders the beat pulse as a sparse dot wash over the
// background. Intensity in [0, 0.1] maps to dot density.
func (c *Controller) drawOverlay(dst *core.Screen) {
	intensity := c.pulse.Overlay()
	if intensity <= 0 {
		return
	}
	stride := 40 - int(intensity*320)
	if stride < 4 {
		stride = 4
	}
	accent := core.ColorByName(c.cfg.ColorPalette.Accent)
	for y := 0; y < dst.Height(); y++ {
		for x := (y * 3) % stride; x < dst.Width(); x += stride {
			dst.SetColored(x, y, '·', accent)
		}
	}
}

func (c *Controller) drawHUD(dst *core.Screen) {
	score := 0
	if c.session != nil {
		score = c.session.Score()
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", score), core.ColorWhite)
	title := c.behavior.Title
	dst.DrawText(dst.Width()-len(title)-1, 0, title)
	if c.behavior.ID == "collector" {
		dst.DrawTextColored(1, 1, fmt.Sprintf("Missed: %d/%d", c.missed, maxMissed), core.ColorGray)
	}
}

func (c *Controller) drawBanner(dst *core.Screen, title, detail string) {
	w, h := dst.Width(), dst.Height()
	bw := core.Max(len(title), len(detail)) + 4
	bh := 5
	r := core.NewRect((w-bw)/2, (h-bh)/2, bw, bh)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColored(r.X+(bw-len(title))/2, r.Y+1, title, core.ColorYellow)
	dst.DrawText(r.X+(bw-len(detail))/2, r.Y+3, detail)
}
