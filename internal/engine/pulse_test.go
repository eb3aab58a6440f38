package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestPulseOverlayPeakAndFade(t *testing.T) {
	beat := 500.0
	energy := 0.6
	p := NewBeatPulse(beat, energy, rand.New(rand.NewSource(1)))

	p.OnBeat()
	wantPeak := 0.04 + energy*0.06
	if math.Abs(p.Overlay()-wantPeak) > 1e-9 {
		t.Errorf("overlay peak = %f, expected %f", p.Overlay(), wantPeak)
	}

	// Half the fade window: overlay should be half the peak.
	p.Advance(0.4 * beat)
	if math.Abs(p.Overlay()-wantPeak/2) > 1e-9 {
		t.Errorf("overlay mid-fade = %f, expected %f", p.Overlay(), wantPeak/2)
	}

	// Past the full 0.8*beat window the overlay reaches zero and stays there.
	p.Advance(0.5 * beat)
	if p.Overlay() != 0 {
		t.Errorf("overlay after fade = %f, expected 0", p.Overlay())
	}
	p.Advance(1000)
	if p.Overlay() != 0 {
		t.Error("overlay went negative")
	}
}

func TestPulseShakeEveryFourthBeat(t *testing.T) {
	p := NewBeatPulse(500, 0.9, rand.New(rand.NewSource(1)))

	for i := 0; i < 3; i++ {
		p.OnBeat()
		if dx, dy := p.ShakeOffset(); dx != 0 || dy != 0 {
			t.Fatalf("shake active after beat %d, expected only on 4th", i+1)
		}
	}

	p.OnBeat() // 4th beat
	moved := false
	for i := 0; i < 20; i++ {
		if dx, dy := p.ShakeOffset(); dx != 0 || dy != 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("4th beat with energy > 0.5 should produce camera shake")
	}

	// Shake ends after 0.3 beat intervals.
	p.Advance(0.3*500 + 1)
	if dx, dy := p.ShakeOffset(); dx != 0 || dy != 0 {
		t.Error("shake should end after its duration")
	}
}

func TestPulseNoShakeAtLowEnergy(t *testing.T) {
	p := NewBeatPulse(500, 0.4, rand.New(rand.NewSource(1)))

	for i := 0; i < 8; i++ {
		p.OnBeat()
		if dx, dy := p.ShakeOffset(); dx != 0 || dy != 0 {
			t.Fatal("low-energy playlist must never shake")
		}
	}
}

func TestPulseBeatCounter(t *testing.T) {
	p := NewBeatPulse(500, 0.5, rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		p.OnBeat()
	}
	if p.Beats() != 5 {
		t.Errorf("Beats() = %d, expected 5", p.Beats())
	}
}
