// Package leaderboard keeps the fixed five-slot in-run leaderboard.
package leaderboard

import "sort"

// Capacity is the number of rows the leaderboard shows.
const Capacity = 5

// PlayerName is the name shown for the player's row.
const PlayerName = "YOU"

// Entry is one leaderboard row.
type Entry struct {
	Name     string
	Score    int
	IsPlayer bool
}

// Seed returns the fixed rows every run starts with.
func Seed() []Entry {
	return []Entry{
		{Name: "AquaKing", Score: 50000},
		{Name: "DeepDiver", Score: 35000},
		{Name: "SpeedFish", Score: 25000},
		{Name: "WaveRider", Score: 15000},
		{Name: "Bubbles", Score: 10000},
	}
}

// Board is the leaderboard of one run. The player holds at most one row.
type Board struct {
	entries []Entry
}

// New creates a board filled with the seed rows.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the seed rows.
func (b *Board) Reset() {
	b.entries = Seed()
}

// Submit offers the player's current score.
// Without a player row, the player is inserted above the first row it beats
// and the overflow row is dropped. With a row, its score is updated and the
// board re-sorted. Returns true when the board changed.
func (b *Board) Submit(score int) bool {
	if i := b.playerIndex(); i >= 0 {
		if b.entries[i].Score == score {
			return false
		}
		b.entries[i].Score = score
		sort.SliceStable(b.entries, func(x, y int) bool {
			return b.entries[x].Score > b.entries[y].Score
		})
		return true
	}

	pos := -1
	for i, e := range b.entries {
		if score > e.Score {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = Entry{Name: PlayerName, Score: score, IsPlayer: true}
	if len(b.entries) > Capacity {
		b.entries = b.entries[:Capacity]
	}
	return true
}

// Entries returns a copy of the rows, highest score first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// PlayerRank returns the player's 1-based rank, or 0 when not on the board.
func (b *Board) PlayerRank() int {
	return b.playerIndex() + 1
}

func (b *Board) playerIndex() int {
	for i, e := range b.entries {
		if e.IsPlayer {
			return i
		}
	}
	return -1
}
