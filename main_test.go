package main

import (
	"testing"

	"github.com/hailam/rookmate/internal/board"
	"github.com/hailam/rookmate/internal/storage"
)

func TestChosenSettingsFlagsWin(t *testing.T) {
	prefs := &storage.UserPreferences{
		Difficulty: storage.DifficultyEasy,
		EngineRole: storage.RoleDefender,
	}
	set := map[string]bool{"engine-side": true, "difficulty": true}

	side, diff := chosenSettings("attacker", "hard", set, prefs)
	if side != "attacker" || diff != "hard" {
		t.Errorf("typed flags must win: got %q, %q", side, diff)
	}
}

func TestChosenSettingsPreferencesFallBack(t *testing.T) {
	prefs := &storage.UserPreferences{
		Difficulty: storage.DifficultyHard,
		EngineRole: storage.RoleDefender,
	}

	side, diff := chosenSettings("attacker", "medium", map[string]bool{}, prefs)
	if side != "defender" || diff != "hard" {
		t.Errorf("unset flags should use stored preferences: got %q, %q", side, diff)
	}
}

func TestChosenSettingsNoPreferences(t *testing.T) {
	side, diff := chosenSettings("defender", "easy", map[string]bool{}, nil)
	if side != "defender" || diff != "easy" {
		t.Errorf("without a store the flag defaults stand: got %q, %q", side, diff)
	}
}

func TestSessionPreferences(t *testing.T) {
	prev := &storage.UserPreferences{Username: "trainer"}

	prefs := sessionPreferences(prev, "defender", "easy", board.Black)
	if prefs.Username != "trainer" {
		t.Errorf("Username = %q, want trainer", prefs.Username)
	}
	if prefs.EngineRole != storage.RoleDefender {
		t.Errorf("EngineRole = %v, want defender", prefs.EngineRole)
	}
	if prefs.Difficulty != storage.DifficultyEasy {
		t.Errorf("Difficulty = %v, want easy", prefs.Difficulty)
	}
	if prefs.EngineColor != storage.ColorBlack {
		t.Errorf("EngineColor = %v, want black", prefs.EngineColor)
	}

	prefs = sessionPreferences(nil, "attacker", "hard", board.White)
	if prefs.EngineRole != storage.RoleAttacker || prefs.Difficulty != storage.DifficultyHard ||
		prefs.EngineColor != storage.ColorWhite {
		t.Errorf("unexpected preferences %+v", prefs)
	}
}

func TestPreferencesRoundTripThroughStore(t *testing.T) {
	store, err := storage.OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.SavePreferences(sessionPreferences(nil, "defender", "hard", board.White)); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	loaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}

	side, diff := chosenSettings("attacker", "medium", map[string]bool{}, loaded)
	if side != "defender" || diff != "hard" {
		t.Errorf("next launch should resume last session: got %q, %q", side, diff)
	}
}

func TestDefaultPosition(t *testing.T) {
	pos, err := defaultPosition(board.White)
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.FEN(); got != "4k3/8/8/8/8/8/8/R3K3 w - - 0 1" {
		t.Errorf("white setup FEN = %q", got)
	}

	pos, err = defaultPosition(board.Black)
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.FEN(); got != "r3k3/8/8/8/8/8/8/4K3 b - - 0 1" {
		t.Errorf("black setup FEN = %q", got)
	}
}

func TestCustomPosition(t *testing.T) {
	pos, err := customPosition(board.White, "e1", "a1", "e8")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.FEN(); got != "4k3/8/8/8/8/8/8/R3K3 w - - 0 1" {
		t.Errorf("FEN = %q", got)
	}

	if _, err := customPosition(board.White, "z9", "a1", "e8"); err == nil {
		t.Error("bad square should fail")
	}
	if _, err := customPosition(board.White, "e1", "a1", "e2"); err == nil {
		t.Error("adjacent kings should fail")
	}
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		over  bool
		mated bool
		draw  bool
	}{
		{"mate", "k7/2K5/8/8/8/8/8/R7 b - - 0 1", true, true, false},
		{"stalemate", "k7/1R6/1K6/8/8/8/8/8 b - - 0 1", true, false, true},
		{"bare kings", "k7/8/8/8/8/8/8/K7 w - - 0 1", true, false, true},
		{"ongoing", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := board.ParseFEN(c.fen)
			if err != nil {
				t.Fatal(err)
			}
			over, result := verdict(pos, board.White)
			if over != c.over {
				t.Fatalf("over = %v, want %v", over, c.over)
			}
			if result.record.Mated != c.mated || result.record.Draw != c.draw {
				t.Errorf("record = %+v", result.record)
			}
		})
	}
}
