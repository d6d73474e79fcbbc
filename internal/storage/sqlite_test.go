package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
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

	games := []GameRecord{
		{Size: 4, Score: 100, MaxTile: 32, Moves: 40},
		{Size: 4, Score: 50, MaxTile: 16, Moves: 20},
		{Size: 4, Score: 200, MaxTile: 64, Moves: 80},
		{Size: 5, Score: 500, MaxTile: 128, Moves: 150},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(4, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("game %d: expected score %d, got %d", i, want, top[i].Score)
		}
	}
	if top[0].MaxTile != 64 || top[0].Moves != 80 || top[0].Size != 4 {
		t.Errorf("best game = %+v, want max tile 64 after 80 moves", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other, err := store.TopGames(5, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(other) != 1 || other[0].Score != 500 {
		t.Errorf("Expected one 5x5 game scoring 500, got %+v", other)
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveGame(GameRecord{Size: 4, Score: i * 10})
	}

	top, err := store.TopGames(4, 5)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 games, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopGames(4, 0)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 games, got %d", len(top))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(4)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveGame(GameRecord{Size: 4, Score: 100})
	store.SaveGame(GameRecord{Size: 4, Score: 300})
	store.SaveGame(GameRecord{Size: 3, Score: 900})

	best, err = store.BestScore(4)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameRecord{Size: 4, Score: 100})
	store.SaveGame(GameRecord{Size: 4, Score: 200})
	store.SaveGame(GameRecord{Size: 5, Score: 300})

	if err := store.ClearGames(4); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	top, _ := store.TopGames(4, 10)
	if len(top) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(top))
	}

	// Other sizes should be unaffected
	top, _ = store.TopGames(5, 10)
	if len(top) != 1 {
		t.Errorf("Expected 1 game for size 5, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveGame(GameRecord{Size: 4, Score: 100, MaxTile: 16, Moves: 10})
	store.SaveGame(GameRecord{Size: 4, Score: 300, MaxTile: 64, Moves: 30})

	stats, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.BestScore != 300 || stats.BestTile != 64 {
		t.Errorf("Expected best 300 with tile 64, got %d with %d", stats.BestScore, stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.TotalMoves != 40 {
		t.Errorf("Expected 40 moves, got %d", stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreSnapshots(t *testing.T) {
	store := openTestStore(t)

	snap, err := store.LoadSnapshot(4)
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if snap != nil {
		t.Fatalf("Expected no snapshot, got %+v", snap)
	}

	m, err := t2048.NewModelFromValues([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}, 36, 120, false)
	if err != nil {
		t.Fatalf("NewModelFromValues() failed: %v", err)
	}

	if err := store.SaveSnapshot(m.Snapshot()); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	// Saving again replaces the previous save for the size
	m.Tilt(t2048.South)
	if err := store.SaveSnapshot(m.Snapshot()); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	snap, err = store.LoadSnapshot(4)
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if snap == nil {
		t.Fatal("Expected a snapshot")
	}
	if !reflect.DeepEqual(*snap, m.Snapshot()) {
		t.Errorf("snapshot = %+v, want %+v", *snap, m.Snapshot())
	}

	restored, err := t2048.FromSnapshot(*snap)
	if err != nil {
		t.Fatalf("FromSnapshot() failed: %v", err)
	}
	if !restored.Equal(m) {
		t.Errorf("restored game differs:%s\nwant:%s", restored, m)
	}

	if err := store.DeleteSnapshot(4); err != nil {
		t.Fatalf("DeleteSnapshot() failed: %v", err)
	}
	if snap, _ := store.LoadSnapshot(4); snap != nil {
		t.Errorf("Expected snapshot to be deleted, got %+v", snap)
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
