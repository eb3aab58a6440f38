// Package music holds the playlist-analysis data contract and the pure
// mapping from audio metrics to simulation parameters. Everything here is
// deterministic: the same inputs always produce the same outputs, which is
// what lets mode controllers compute their parameters once at setup.
package music

// PlaylistMetrics are the aggregate audio features of a playlist, produced
// by an external analysis collaborator. All avg* fields except AvgTempo and
// AvgLoudness are normalized to [0, 1]. A nil *PlaylistMetrics is valid
// everywhere it is accepted and degrades to configuration defaults.
type PlaylistMetrics struct {
	AvgTempo        float64 `json:"avg_tempo" yaml:"avg_tempo"` // Beats per minute
	AvgEnergy       float64 `json:"avg_energy" yaml:"avg_energy"`
	AvgValence      float64 `json:"avg_valence" yaml:"avg_valence"`
	AvgAcousticness float64 `json:"avg_acousticness" yaml:"avg_acousticness"`
	AvgDanceability float64 `json:"avg_danceability" yaml:"avg_danceability"`
	AvgLoudness     float64 `json:"avg_loudness" yaml:"avg_loudness"` // dB, typically negative
	TrackCount      int     `json:"track_count" yaml:"track_count"`
}
