package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slash/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("slash", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("slash_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("slash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	endless, err := store.TopScores("slash_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("slash", (i+1)*100)
	}

	scores, err := store.TopScores("slash", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to 10.
	scores, err = store.TopScores("slash", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("slash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("slash", 100)
	store.SaveScore("slash", 300)
	store.SaveScore("slash", 200)

	high, err = store.HighScore("slash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("slash", 100)
	store.SaveScore("slash", 200)
	store.SaveScore("slash_endless", 300)
	store.SaveRun("alice", core.RunSummary{GameID: "slash", Outcome: core.OutcomeWin})
	store.SaveRun("alice", core.RunSummary{GameID: "slash_endless", Outcome: core.OutcomeGameOver})

	if err := store.ClearScores("slash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("slash", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(classic))
	}
	runs, _ := store.RecentRuns("slash", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	endless, _ := store.TopScores("slash_endless", 10)
	if len(endless) != 1 {
		t.Error("Endless scores should not be affected by clearing classic")
	}
	runs, _ = store.RecentRuns("slash_endless", 10)
	if len(runs) != 1 {
		t.Error("Endless runs should not be affected by clearing classic")
	}
}

func TestStoreClearScoresRollsBack(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("slash", 100)
	store.SaveScore("slash", 200)

	// Make the second delete fail after the first one ran.
	if _, err := store.db.Exec("DROP TABLE runs"); err != nil {
		t.Fatalf("DROP TABLE failed: %v", err)
	}

	if err := store.ClearScores("slash"); err == nil {
		t.Fatal("ClearScores() should fail without the runs table")
	}

	scores, err := store.TopScores("slash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("Expected 2 scores kept after failed clear, got %d", len(scores))
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	first := core.RunSummary{
		GameID:   "slash",
		Score:    96,
		Cuts:     1,
		AreaLeft: 0.741,
		Balls:    2,
		Outcome:  core.OutcomeGameOver,
		Ticks:    180,
		Duration: 3 * time.Second,
	}
	second := core.RunSummary{
		GameID:   "slash",
		Score:    410,
		Cuts:     5,
		AreaLeft: 0.18,
		Balls:    7,
		Outcome:  core.OutcomeWin,
		Ticks:    2400,
		Duration: 40 * time.Second,
	}

	if _, err := store.SaveRun("brave-otter", first); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("calm-heron", second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.SaveRun("calm-heron", core.RunSummary{GameID: "slash_endless", Outcome: core.OutcomeAbandoned})

	runs, err := store.RecentRuns("slash", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Player != "calm-heron" || runs[0].Run != second {
		t.Errorf("runs[0] = %+v, expected %+v", runs[0], second)
	}
	if runs[1].Player != "brave-otter" || runs[1].Run != first {
		t.Errorf("runs[1] = %+v, expected %+v", runs[1], first)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs across games, got %d", len(all))
	}

	limited, _ := store.RecentRuns("", 1)
	if len(limited) != 1 || limited[0].Run.GameID != "slash_endless" {
		t.Errorf("RecentRuns(limit 1) = %+v", limited)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("slash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("slash", 100)
	store.SaveScore("slash", 300)
	store.SaveRun("p", core.RunSummary{GameID: "slash", Score: 100, Cuts: 2, Outcome: core.OutcomeGameOver})
	store.SaveRun("p", core.RunSummary{GameID: "slash", Score: 300, Cuts: 6, Outcome: core.OutcomeWin})

	stats, err = store.GetGameStats("slash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.TotalCuts != 8 || stats.Wins != 1 {
		t.Errorf("TotalCuts = %d, Wins = %d, expected 8, 1", stats.TotalCuts, stats.Wins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
