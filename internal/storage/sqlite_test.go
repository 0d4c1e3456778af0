package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/askorohod/twenty48/internal/game"
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

func testRecord(score, maxTile int, difficulty string, won bool) game.Record {
	return game.Record{
		Score:           score,
		MaxTile:         maxTile,
		Moves:           score / 4,
		DurationSeconds: 61.5,
		Difficulty:      difficulty,
		Won:             won,
	}
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveGame(testRecord(score, 128, "medium", false)); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	// Different difficulty
	if _, err := store.SaveGame(testRecord(500, 256, "hard", false)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	games, err := store.TopGames("medium", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("Expected 3 games, got %d", len(games))
	}

	// Should be sorted descending
	if games[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", games[0].Score)
	}
	if games[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", games[1].Score)
	}
	if games[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", games[2].Score)
	}

	hardGames, err := store.TopGames("hard", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(hardGames) != 1 {
		t.Errorf("Expected 1 hard game, got %d", len(hardGames))
	}
}

func TestStoreGameEntryFields(t *testing.T) {
	store := openTestStore(t)

	rec := game.Record{
		Score:           1234,
		MaxTile:         2048,
		Moves:           310,
		DurationSeconds: 412.7,
		Difficulty:      "easy",
		Won:             true,
	}
	if _, err := store.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	games, err := store.TopGames("easy", 1)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(games))
	}

	e := games[0]
	if e.Score != 1234 || e.MaxTile != 2048 || e.Moves != 310 {
		t.Errorf("Entry fields wrong: %+v", e)
	}
	if e.DurationSeconds != 412.7 {
		t.Errorf("DurationSeconds = %v, want 412.7", e.DurationSeconds)
	}
	if !e.Won {
		t.Error("Won flag was not persisted")
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveGame(testRecord((i+1)*100, 64, "medium", false))
	}

	games, err := store.TopGames("medium", 3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(games))
	}

	if games[0].Score != 500 || games[1].Score != 400 || games[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", games)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No games yet
	best, err := store.BestScore("medium")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty table, got %d", best)
	}

	store.SaveGame(testRecord(100, 64, "medium", false))
	store.SaveGame(testRecord(300, 128, "medium", false))
	store.SaveGame(testRecord(200, 64, "medium", false))

	best, err = store.BestScore("medium")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreAggregates(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(testRecord(100, 64, "medium", false))
	store.SaveGame(testRecord(300, 256, "medium", true))
	store.SaveGame(testRecord(200, 128, "medium", false))

	stats, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats == nil {
		t.Fatal("Stats() returned nil for recorded difficulty")
	}

	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, want 300", stats.BestScore)
	}
	if stats.BestTile != 256 {
		t.Errorf("BestTile = %d, want 256", stats.BestTile)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if got := stats.AvgScore(); got != 200 {
		t.Errorf("AvgScore() = %v, want 200", got)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats != nil {
		t.Errorf("Stats() for unplayed difficulty should be nil, got %+v", stats)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(testRecord(100, 64, "easy", false))
	store.SaveGame(testRecord(200, 128, "medium", false))
	store.SaveGame(testRecord(300, 256, "hard", true))
	store.SaveGame(testRecord(50, 32, "hard", false))

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}

	if len(all) != 3 {
		t.Errorf("Expected stats for 3 difficulties, got %d", len(all))
	}
	if all["hard"] == nil || all["hard"].GamesPlayed != 2 {
		t.Errorf("hard stats wrong: %+v", all["hard"])
	}
	if all["hard"].Wins != 1 {
		t.Errorf("hard wins = %d, want 1", all["hard"].Wins)
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveGame(testRecord((i+1)*10, 32, "medium", false))
	}

	recent, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 recent games, got %d", len(recent))
	}
	// Most recent first
	if recent[0].Score != 50 {
		t.Errorf("Expected most recent score 50, got %d", recent[0].Score)
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(testRecord(100, 64, "medium", false))
	store.SaveGame(testRecord(200, 128, "hard", false))

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	games, _ := store.TopGames("medium", 10)
	if len(games) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(games))
	}

	stats, _ := store.Stats("hard")
	if stats != nil {
		t.Errorf("Aggregates should reset after clear, got %+v", stats)
	}
}

func TestStoreSaveSessionAdapter(t *testing.T) {
	store := openTestStore(t)

	var recorder game.Recorder = store
	if err := recorder.SaveSession(testRecord(150, 128, "medium", false)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	best, err := store.BestScore("medium")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 150 {
		t.Errorf("Expected best score of 150, got %d", best)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
