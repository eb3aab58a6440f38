package music

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// Analyzer produces playlist metrics for a playlist identifier.
// Implementations must be safe to call repeatedly with the same identifier.
type Analyzer interface {
	Analyze(ctx context.Context, playlistID string) (*PlaylistMetrics, error)
}

// FallbackAnalyzer synthesizes metrics deterministically from the playlist
// identifier. Repeated calls with the same identifier always yield identical
// metrics, so gameplay stays reproducible when no analysis service is
// reachable.
type FallbackAnalyzer struct{}

// Analyze derives metrics from an FNV-1a hash of the identifier.
func (FallbackAnalyzer) Analyze(_ context.Context, playlistID string) (*PlaylistMetrics, error) {
	h := fnv.New64a()
	h.Write([]byte(playlistID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	return &PlaylistMetrics{
		AvgTempo:        70 + rng.Float64()*110, // 70-180 BPM
		AvgEnergy:       rng.Float64(),
		AvgValence:      rng.Float64(),
		AvgAcousticness: rng.Float64(),
		AvgDanceability: rng.Float64(),
		AvgLoudness:     -25 + rng.Float64()*20, // -25..-5 dB
		TrackCount:      8 + rng.Intn(42),
	}, nil
}

// ServiceAnalyzer queries an external analysis service over HTTP and falls
// back to deterministic synthetic metrics when the service is unreachable or
// responds with an error. The fallback makes upstream availability invisible
// to the rest of the system.
type ServiceAnalyzer struct {
	BaseURL  string
	Client   *http.Client
	Fallback Analyzer
}

// NewServiceAnalyzer creates an analyzer for the given service base URL.
// An empty base URL yields an analyzer that always uses the fallback.
func NewServiceAnalyzer(baseURL string) *ServiceAnalyzer {
	return &ServiceAnalyzer{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 5 * time.Second},
		Fallback: FallbackAnalyzer{},
	}
}

// Analyze fetches metrics for the playlist, degrading to the fallback on
// any transport or decode failure.
func (a *ServiceAnalyzer) Analyze(ctx context.Context, playlistID string) (*PlaylistMetrics, error) {
	if a.BaseURL == "" {
		return a.Fallback.Analyze(ctx, playlistID)
	}

	m, err := a.fetch(ctx, playlistID)
	if err != nil {
		return a.Fallback.Analyze(ctx, playlistID)
	}
	return m, nil
}

func (a *ServiceAnalyzer) fetch(ctx context.Context, playlistID string) (*PlaylistMetrics, error) {
	endpoint := fmt.Sprintf("%s/playlists/%s/metrics", a.BaseURL, url.PathEscape(playlistID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("music: cannot build request: %w", err)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("music: metrics request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("music: metrics service returned %s", resp.Status)
	}

	var m PlaylistMetrics
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("music: cannot decode metrics: %w", err)
	}
	return &m, nil
}
