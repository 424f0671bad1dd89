package storage

import (
	"testing"
	"time"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Username != "Player" {
		t.Errorf("Username = %q, want Player", prefs.Username)
	}
	if prefs.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty = %v, want medium", prefs.Difficulty)
	}
	if prefs.EngineRole != RoleAttacker {
		t.Errorf("EngineRole = %v, want attacker", prefs.EngineRole)
	}
}

func TestLoadPreferencesWhenEmpty(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Username != "Player" || prefs.Difficulty != DifficultyMedium {
		t.Errorf("empty store should yield defaults, got %+v", prefs)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	in := &UserPreferences{
		Username:    "trainer",
		Difficulty:  DifficultyHard,
		EngineRole:  RoleDefender,
		EngineColor: ColorBlack,
	}
	if err := s.SavePreferences(in); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	out, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if out.Username != "trainer" || out.Difficulty != DifficultyHard ||
		out.EngineRole != RoleDefender || out.EngineColor != ColorBlack {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.LastPlayed.IsZero() {
		t.Error("SavePreferences should stamp LastPlayed")
	}
}

func TestLoadStatsWhenEmpty(t *testing.T) {
	s := openTestStorage(t)

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.Mates != 0 {
		t.Errorf("empty store should yield empty stats, got %+v", stats)
	}
	if stats.MatesByDiff == nil {
		t.Error("MatesByDiff map should be initialized")
	}
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	results := []GameResult{
		{Mated: true, Difficulty: DifficultyEasy, Duration: time.Minute},
		{Mated: true, Difficulty: DifficultyHard, Duration: 2 * time.Minute},
		{Draw: true, Difficulty: DifficultyEasy, Duration: time.Minute},
		{Mated: true, Difficulty: DifficultyHard, Duration: time.Minute},
	}
	for _, r := range results {
		if err := s.RecordGame(r); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 4 || stats.Mates != 3 || stats.Draws != 1 || stats.Losses != 0 {
		t.Errorf("counts = %d games, %d mates, %d draws, %d losses",
			stats.GamesPlayed, stats.Mates, stats.Draws, stats.Losses)
	}
	if stats.MatesByDiff["easy"] != 1 || stats.MatesByDiff["hard"] != 2 {
		t.Errorf("MatesByDiff = %v", stats.MatesByDiff)
	}
	if stats.TotalPlayTime != 5*time.Minute {
		t.Errorf("TotalPlayTime = %v, want 5m", stats.TotalPlayTime)
	}
	// Streak: two mates, broken by a draw, then one more.
	if stats.LongestStreak != 2 || stats.CurrentStreak != 1 {
		t.Errorf("streaks = %d longest, %d current", stats.LongestStreak, stats.CurrentStreak)
	}
}

func TestRecordLossResetsStreak(t *testing.T) {
	s := openTestStorage(t)

	s.RecordGame(GameResult{Mated: true, Difficulty: DifficultyMedium})
	s.RecordGame(GameResult{Difficulty: DifficultyMedium}) // neither mate nor draw

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Losses != 1 || stats.CurrentStreak != 0 || stats.LongestStreak != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGetMateRate(t *testing.T) {
	stats := NewTrainingStats()
	if stats.GetMateRate() != 0 {
		t.Error("no games: rate should be 0")
	}
	stats.GamesPlayed = 4
	stats.Mates = 3
	if got := stats.GetMateRate(); got != 75 {
		t.Errorf("GetMateRate = %f, want 75", got)
	}
}
