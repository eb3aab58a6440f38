package tui

import (
	"path/filepath"
	"testing"

	"github.com/JJC3321/BeatDash/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardOpensOnRequestedMode(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveScore("runner", "chill.json", 420); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, "runner", 100, 40)

	if len(m.modes) == 0 {
		t.Fatal("no registered modes")
	}
	if got := m.modes[m.modeCursor].ID; got != "runner" {
		t.Errorf("initial mode = %q, want %q", got, "runner")
	}
	if len(m.scores) != 1 {
		t.Fatalf("loaded %d scores, want 1", len(m.scores))
	}
	if m.scores[0].Score != 420 {
		t.Errorf("score = %d, want 420", m.scores[0].Score)
	}
	if rows := m.table.Rows(); len(rows) != 1 {
		t.Errorf("table has %d rows, want 1", len(rows))
	}
}

func TestScoreboardUnknownModeFallsBack(t *testing.T) {
	store := testStore(t)

	for _, mode := range []string{"", "no-such-mode"} {
		m := NewScoreboardModel(store, mode, 100, 40)
		if m.modeCursor != 0 {
			t.Errorf("initialMode %q: cursor = %d, want 0", mode, m.modeCursor)
		}
	}
}
