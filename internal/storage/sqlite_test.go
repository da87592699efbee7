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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "cavern", Score: 100, Level: 1, Ticks: 3000, Difficulty: "normal"},
		{GameID: "cavern", Score: 50, Level: 0, Ticks: 1200, Difficulty: "easy"},
		{GameID: "cavern", Score: 200, Level: 3, Ticks: 9000, Difficulty: "hard"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("cavern", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Should be sorted by score descending
	wantScores := []int{200, 100, 50}
	for i, w := range wantScores {
		if got[i].Score != w {
			t.Errorf("run %d: score = %d, want %d", i, got[i].Score, w)
		}
	}
	if got[0].Level != 3 || got[0].Difficulty != "hard" {
		t.Errorf("run details not round-tripped: %+v", got[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunEntry{GameID: "cavern", Score: i * 10, Difficulty: "normal"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("cavern", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 runs with limit 3, got %d", len(got))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	hs, err := store.HighScore("cavern")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Empty store high score = %d, want 0", hs)
	}

	store.SaveRun(RunEntry{GameID: "cavern", Score: 150, Difficulty: "normal"})
	store.SaveRun(RunEntry{GameID: "cavern", Score: 400, Difficulty: "normal"})

	hs, err = store.HighScore("cavern")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 400 {
		t.Errorf("HighScore = %d, want 400", hs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "cavern", Score: 10, Difficulty: "normal"})
	store.SaveRun(RunEntry{GameID: "other", Score: 20, Difficulty: "normal"})

	if err := store.ClearRuns("cavern"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	got, _ := store.TopRuns("cavern", 10)
	if len(got) != 0 {
		t.Errorf("Expected 0 cavern runs after clear, got %d", len(got))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("ClearRuns should not touch other games, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "cavern", Score: 100, Level: 2, Difficulty: "normal"})
	store.SaveRun(RunEntry{GameID: "cavern", Score: 300, Level: 5, Difficulty: "normal"})

	stats, err := store.GetGameStats("cavern")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, want 2", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, want 5", stats.BestLevel)
	}
}
