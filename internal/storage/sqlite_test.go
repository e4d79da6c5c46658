package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
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

func sampleJournal(seed int64, n int) core.Journal {
	j := core.Journal{Seed: seed}
	for i := 1; i <= n; i++ {
		j.Record(1000.0/60, i%7 == 1, float64(i)*1000.0/60)
	}
	return j
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun(Run{GameID: "flappy", Score: 2, Journal: sampleJournal(5, 3)})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadRun(id); err != nil {
		t.Errorf("run should survive reopening: %v", err)
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)
	journal := sampleJournal(987654321, 50)

	id, err := store.SaveRun(Run{GameID: "flappy", Score: 4, GameOver: true, Journal: journal})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign an ID")
	}

	run, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if run.ID != id || run.GameID != "flappy" || run.Score != 4 || !run.GameOver {
		t.Errorf("LoadRun() metadata = %+v", run)
	}
	if run.Seed != journal.Seed || run.Journal.Seed != journal.Seed {
		t.Errorf("seed = %d / %d, expected %d", run.Seed, run.Journal.Seed, journal.Seed)
	}
	if run.Ticks != 50 || len(run.Journal.Inputs) != 50 {
		t.Fatalf("expected 50 ticks, got %d / %d", run.Ticks, len(run.Journal.Inputs))
	}
	for i, in := range journal.Inputs {
		if run.Journal.Inputs[i] != in {
			t.Fatalf("input %d = %+v, expected %+v", i, run.Journal.Inputs[i], in)
		}
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", GameID: "flappy", Journal: sampleJournal(1, 1)})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected the given ID", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", GameID: "flappy"}); err == nil {
		t.Error("saving a duplicate ID should fail")
	}
}

func TestLoadRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun("nope")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadRun() error = %v, expected ErrRunNotFound", err)
	}
}

func TestListRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.SaveRun(Run{GameID: "flappy", Score: i, Journal: sampleJournal(int64(i), i)})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}
	if _, err := store.SaveRun(Run{GameID: "other", Journal: sampleJournal(9, 1)}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.ListRuns("flappy", 3)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if runs[i].ID != want {
			t.Errorf("runs[%d].ID = %s, expected %s", i, runs[i].ID, want)
		}
	}
	if runs[0].Ticks != 4 || len(runs[0].Journal.Inputs) != 0 {
		t.Errorf("ListRuns() should report ticks without loading journals: %+v", runs[0])
	}

	all, err := store.ListRuns("", 100)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 runs across games, got %d", len(all))
	}
}

func TestDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "flappy", Journal: sampleJournal(3, 10)})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.LoadRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("deleted run should be gone, got %v", err)
	}
	if err := store.DeleteRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second DeleteRun() = %v, expected ErrRunNotFound", err)
	}
}
