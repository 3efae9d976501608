package leaderboard

import "testing"

func TestSubmitInsertsAndEvicts(t *testing.T) {
	b := New()

	if !b.Submit(40000) {
		t.Fatal("Submit(40000) should change the board")
	}

	entries := b.Entries()
	if len(entries) != Capacity {
		t.Fatalf("len(entries) = %d, expected %d", len(entries), Capacity)
	}

	want := []struct {
		name  string
		score int
	}{
		{"AquaKing", 50000},
		{PlayerName, 40000},
		{"DeepDiver", 35000},
		{"SpeedFish", 25000},
		{"WaveRider", 15000},
	}
	for i, w := range want {
		if entries[i].Name != w.name || entries[i].Score != w.score {
			t.Errorf("entry %d = %s %d, expected %s %d", i, entries[i].Name, entries[i].Score, w.name, w.score)
		}
	}

	if rank := b.PlayerRank(); rank != 2 {
		t.Errorf("PlayerRank() = %d, expected 2", rank)
	}
}

func TestSubmitBelowEveryRow(t *testing.T) {
	b := New()

	tests := []int{0, 9999, 10000}
	for _, score := range tests {
		if b.Submit(score) {
			t.Errorf("Submit(%d) should not change the board", score)
		}
		if b.PlayerRank() != 0 {
			t.Errorf("player should not be ranked after Submit(%d)", score)
		}
	}
}

func TestSubmitUpdatesPlayerRow(t *testing.T) {
	b := New()
	b.Submit(12000)
	if rank := b.PlayerRank(); rank != 5 {
		t.Fatalf("PlayerRank() = %d, expected 5", rank)
	}

	b.Submit(60000)
	if rank := b.PlayerRank(); rank != 1 {
		t.Errorf("PlayerRank() = %d after climbing, expected 1", rank)
	}

	players := 0
	for _, e := range b.Entries() {
		if e.IsPlayer {
			players++
		}
	}
	if players != 1 {
		t.Errorf("player rows = %d, expected 1", players)
	}
	if b.Submit(60000) {
		t.Error("resubmitting the same score should not change the board")
	}
}

func TestEntriesNeverExceedCapacity(t *testing.T) {
	b := New()
	for score := 0; score <= 100000; score += 777 {
		b.Submit(score)
		if n := len(b.Entries()); n > Capacity {
			t.Fatalf("board holds %d rows at score %d", n, score)
		}
	}
}

func TestReset(t *testing.T) {
	b := New()
	b.Submit(99999)
	b.Reset()

	if b.PlayerRank() != 0 {
		t.Error("Reset should drop the player row")
	}
	if got := b.Entries()[4].Name; got != "Bubbles" {
		t.Errorf("last row after Reset = %s, expected Bubbles", got)
	}
}
