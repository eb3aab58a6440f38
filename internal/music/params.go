package music

import "github.com/JJC3321/BeatDash/internal/core"

// Tuning constants for the metric-to-parameter mapping.
const (
	// BaselineTempo is the BPM treated as a 1.0x speed baseline and the
	// beat interval fallback when no metrics are available.
	BaselineTempo = 120.0

	// MinSpawnIntervalMs and MaxSpawnIntervalMs bound the spawn cadence so
	// extreme tempo/energy combinations stay playable.
	MinSpawnIntervalMs = 400.0
	MaxSpawnIntervalMs = 3000.0
)

// BeatIntervalMs returns the interval between beats in milliseconds.
// Falls back to the 120 BPM baseline when metrics are absent.
func BeatIntervalMs(m *PlaylistMetrics) float64 {
	tempo := BaselineTempo
	if m != nil && m.AvgTempo > 0 {
		tempo = m.AvgTempo
	}
	return 60000.0 / tempo
}

// SpawnIntervalMs returns the interval between entity spawns. Nominally one
// spawn per beat; energy compresses or stretches the interval; the hard
// floor/ceiling prevent degenerate unplayable cadences. Without metrics the
// configuration's own spawn rate is returned unchanged.
func SpawnIntervalMs(m *PlaylistMetrics, fallbackMs float64) float64 {
	if m == nil {
		return fallbackMs
	}
	return core.ClampF(BeatIntervalMs(m)*(1.5-m.AvgEnergy), MinSpawnIntervalMs, MaxSpawnIntervalMs)
}

// SpeedMultiplier returns the scale factor for hazard/reward motion.
// 120 BPM is the 1.0x baseline; energy adds up to 60% extra speed.
func SpeedMultiplier(m *PlaylistMetrics) float64 {
	if m == nil {
		return 1.0
	}
	return (m.AvgTempo / BaselineTempo) * (0.7 + m.AvgEnergy*0.6)
}

// GravityMultiplier returns the effective gravity scale. Acoustic playlists
// reduce gravity toward 0.5x (floatier physics); electronic playlists push
// toward 1.2x. Without metrics the configured gravity passes through.
func GravityMultiplier(m *PlaylistMetrics, gravity float64) float64 {
	if m == nil {
		return gravity
	}
	return gravity * (1.2 - m.AvgAcousticness*0.7)
}

// Params bundles the four derived simulation parameters. Mode controllers
// compute this once per session at setup.
type Params struct {
	BeatIntervalMs    float64
	SpawnIntervalMs   float64
	SpeedMultiplier   float64
	GravityMultiplier float64
}

// DeriveParams computes all four parameters for the given metrics and
// configuration fallbacks.
func DeriveParams(m *PlaylistMetrics, spawnRateMs, gravity float64) Params {
	return Params{
		BeatIntervalMs:    BeatIntervalMs(m),
		SpawnIntervalMs:   SpawnIntervalMs(m, spawnRateMs),
		SpeedMultiplier:   SpeedMultiplier(m),
		GravityMultiplier: GravityMultiplier(m, gravity),
	}
}
