package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Species: "fish", Score: 100, Distance: 120.5, MaxCombo: 2, Duration: 30 * time.Second},
		{Species: "fish", Score: 50, Distance: 80, MaxCombo: 1, Duration: 10 * time.Second},
		{Species: "turtle", Score: 200, Distance: 300, MaxCombo: 5, Duration: 90 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	got := top[0]
	if got.Species != "turtle" || got.Distance != 300 || got.MaxCombo != 5 || got.Duration != 90*time.Second {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.ID == 0 {
		t.Error("Expected an assigned ID")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{Species: "fish", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Species: "fish", Score: 100})
	store.SaveRun(Run{Species: "shark", Score: 100})

	top, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Species != "fish" || top[1].Species != "shark" {
		t.Errorf("Expected ties in insertion order, got %v", top)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for an empty history, got %d", best)
	}

	store.SaveRun(Run{Species: "fish", Score: 100})
	store.SaveRun(Run{Species: "fish", Score: 300})
	store.SaveRun(Run{Species: "dolphin", Score: 200})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreSpeciesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Species: "fish", Score: 100, Distance: 50})
	store.SaveRun(Run{Species: "fish", Score: 300, Distance: 250})
	store.SaveRun(Run{Species: "ray", Score: 40, Distance: 20})

	stats, err := store.SpeciesStats()
	if err != nil {
		t.Fatalf("SpeciesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 species, got %d", len(stats))
	}

	fish := stats["fish"]
	if fish == nil {
		t.Fatal("Missing fish stats")
	}
	if fish.Runs != 2 || fish.BestScore != 300 || fish.AvgScore != 200 || fish.MaxDistance != 250 {
		t.Errorf("Unexpected fish stats: %+v", fish)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Species: "fish", Score: 100})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRun(Run{Species: "fish", Score: 100})

	top, err := b.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected a separate history per store, got %d runs", len(top))
	}
}
