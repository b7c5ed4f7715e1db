package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	matches := []MatchRecord{
		{GameID: "snakes", Players: []string{"You", "Computer 1"}, Winner: "You", Turns: 24},
		{GameID: "snakes", Players: []string{"You", "Computer 1"}, Winner: "Computer 1", Turns: 31},
		{GameID: "snakes", Players: []string{"Alice", "Bob"}, Winner: "Alice", Turns: 18},
		{GameID: "tictactoe", Players: []string{"Alice", "Bob"}, Turns: 9, Draw: true},
	}
	for i, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch(%d) failed: %v", i, err)
		}
	}

	recent, err := store.RecentMatches("snakes", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 snakes matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].Winner != "Alice" {
		t.Errorf("Expected newest winner Alice, got %q", recent[0].Winner)
	}
	if len(recent[0].Players) != 2 || recent[0].Players[1] != "Bob" {
		t.Errorf("Players round-trip failed: %v", recent[0].Players)
	}

	tttMatches, err := store.RecentMatches("tictactoe", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(tttMatches) != 1 {
		t.Fatalf("Expected 1 tictactoe match, got %d", len(tttMatches))
	}
	if !tttMatches[0].Draw {
		t.Error("Expected draw flag to round-trip")
	}
	if tttMatches[0].Winner != "" {
		t.Errorf("Expected empty winner on a draw, got %q", tttMatches[0].Winner)
	}
}

func TestWinCounts(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	wins := []string{"You", "You", "Computer 1", "You"}
	for _, w := range wins {
		rec := MatchRecord{GameID: "snakes", Players: []string{"You", "Computer 1"}, Winner: w, Turns: 10}
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	// A draw should not count toward wins
	if _, err := store.SaveMatch(MatchRecord{GameID: "snakes", Players: []string{"You", "Computer 1"}, Draw: true}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	counts, err := store.WinCounts("snakes")
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("Expected 2 players with wins, got %d", len(counts))
	}
	if counts[0].Name != "You" || counts[0].Wins != 3 {
		t.Errorf("Expected You with 3 wins first, got %+v", counts[0])
	}
	if counts[1].Name != "Computer 1" || counts[1].Wins != 1 {
		t.Errorf("Expected Computer 1 with 1 win, got %+v", counts[1])
	}
}

func TestClearMatches(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveMatch(MatchRecord{GameID: "snakes", Players: []string{"a", "b"}, Winner: "a"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchRecord{GameID: "tictactoe", Players: []string{"a", "b"}, Winner: "b"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	if err := store.ClearMatches("snakes"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	n, err := store.MatchCount("snakes")
	if err != nil {
		t.Fatalf("MatchCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 snakes matches after clear, got %d", n)
	}

	n, err = store.MatchCount("tictactoe")
	if err != nil {
		t.Fatalf("MatchCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected tictactoe matches untouched, got %d", n)
	}
}
