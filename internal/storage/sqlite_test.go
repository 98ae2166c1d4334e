package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "forge.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "forge.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunEntry{GameID: "forge", Money: 450, Days: 5}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestRun("forge")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 450 {
		t.Errorf("BestRun() = %d after reopen, expected 450", best)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, money := range []int{100, 50, 800, 200} {
		if _, err := store.SaveRun(RunEntry{GameID: "forge", Player: "smith", Money: money, Days: 5, Crafted: 2}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(RunEntry{GameID: "forge_endless", Money: 5000}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("forge", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Money != 800 || runs[1].Money != 200 || runs[2].Money != 100 {
		t.Errorf("runs not ordered by money: %+v", runs)
	}
	if runs[0].Player != "smith" || runs[0].Days != 5 || runs[0].Crafted != 2 {
		t.Errorf("run fields not round-tripped: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreBestRunEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("forge")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 for a game with no runs, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "forge", Money: 100})
	store.SaveRun(RunEntry{GameID: "forge_endless", Money: 300})

	if err := store.ClearRuns("forge"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("forge", 10); len(runs) != 0 {
		t.Errorf("expected no forge runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("forge_endless", 10); len(runs) != 1 {
		t.Error("endless runs should not be affected by clearing forge")
	}
}

func TestStoreCrafts(t *testing.T) {
	store := openTestStore(t)

	crafts := []CraftEntry{
		{GameID: "forge", Item: "Iron Sword", Points: 195, Value: 293},
		{GameID: "forge", Item: "Gold Axe", Points: 400, Value: 600},
		{GameID: "forge", Item: "Steel Spear", Points: 90, Value: 90},
	}
	for _, c := range crafts {
		if _, err := store.SaveCraft(c); err != nil {
			t.Fatalf("SaveCraft() failed: %v", err)
		}
	}

	recent, err := store.RecentCrafts(2)
	if err != nil {
		t.Fatalf("RecentCrafts() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Item != "Steel Spear" || recent[1].Item != "Gold Axe" {
		t.Errorf("RecentCrafts() = %+v, expected newest first", recent)
	}

	finest, err := store.FinestCrafts(10)
	if err != nil {
		t.Fatalf("FinestCrafts() failed: %v", err)
	}
	if len(finest) != 3 || finest[0].Value != 600 || finest[2].Value != 90 {
		t.Errorf("FinestCrafts() = %+v, expected ordered by value", finest)
	}
	if finest[1].Points != 195 {
		t.Errorf("points not round-tripped: %+v", finest[1])
	}
}

func TestCraftsOfMaterial(t *testing.T) {
	store := openTestStore(t)

	for _, item := range []string{"Iron Sword", "Gold Axe", "Iron Spear", "Ironwood Bar"} {
		if _, err := store.SaveCraft(CraftEntry{GameID: "forge", Item: item}); err != nil {
			t.Fatalf("SaveCraft() failed: %v", err)
		}
	}

	iron, err := store.CraftsOf("Iron", 10)
	if err != nil {
		t.Fatalf("CraftsOf() failed: %v", err)
	}
	if len(iron) != 2 || iron[0].Item != "Iron Spear" || iron[1].Item != "Iron Sword" {
		t.Errorf("CraftsOf(Iron) = %+v, expected the two iron items newest first", iron)
	}

	silver, err := store.CraftsOf("Silver", 10)
	if err != nil {
		t.Fatalf("CraftsOf() failed: %v", err)
	}
	if len(silver) != 0 {
		t.Errorf("CraftsOf(Silver) = %+v, expected none", silver)
	}
}
