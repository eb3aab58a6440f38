package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveScore("dodge", "workout-mix", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if runID == "" {
		t.Error("SaveScore() returned empty run ID")
	}

	if _, err := store.SaveScore("dodge", "workout-mix", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("dodge", "chill-vibes", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	if _, err := store.SaveScore("runner", "workout-mix", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Playlist != "chill-vibes" {
		t.Errorf("Expected playlist chill-vibes, got %q", scores[0].Playlist)
	}
	if scores[0].RunID == scores[1].RunID {
		t.Error("Run IDs should be unique per run")
	}

	runnerScores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runnerScores) != 1 {
		t.Errorf("Expected 1 runner score, got %d", len(runnerScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("collector", "", (i+1)*100)
	}

	scores, err := store.TopScores("collector", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("dodge", "", 100)
	store.SaveScore("dodge", "", 300)
	store.SaveScore("dodge", "", 200)

	high, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dodge", "", 100)
	store.SaveScore("dodge", "", 200)
	store.SaveScore("runner", "", 300)

	if err := store.ClearScores("dodge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	dodgeScores, _ := store.TopScores("dodge", 10)
	if len(dodgeScores) != 0 {
		t.Errorf("Expected 0 dodge scores after clear, got %d", len(dodgeScores))
	}

	runnerScores, _ := store.TopScores("runner", 10)
	if len(runnerScores) != 1 {
		t.Errorf("Runner scores should not be affected by clearing dodge")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("platformer", "mix", i*10)
	}

	scores, err := store.AllScores("platformer")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
