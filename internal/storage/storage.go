package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Role identifies which side of the endgame the engine plays.
type Role int

const (
	RoleAttacker Role = iota // engine has king and rook
	RoleDefender             // engine has the bare king
)

// Difficulty represents AI difficulty level
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// EngineColor represents which color the engine plays
type EngineColor int

const (
	ColorWhite EngineColor = iota
	ColorBlack
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username    string      `json:"username"`
	Difficulty  Difficulty  `json:"difficulty"`
	EngineRole  Role        `json:"engine_role"`
	EngineColor EngineColor `json:"engine_color"`
	LastPlayed  time.Time   `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:    "Player",
		Difficulty:  DifficultyMedium,
		EngineRole:  RoleAttacker,
		EngineColor: ColorWhite,
	}
}

// TrainingStats stores endgame training statistics
type TrainingStats struct {
	GamesPlayed   int            `json:"games_played"`
	Mates         int            `json:"mates"` // games the attacker converted
	Draws         int            `json:"draws"`
	Losses        int            `json:"losses"` // rook lost or fifty-move slip
	MatesByDiff   map[string]int `json:"mates_by_difficulty"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestStreak int            `json:"longest_mate_streak"`
	CurrentStreak int            `json:"current_streak"`
}

// NewTrainingStats returns empty training statistics
func NewTrainingStats() *TrainingStats {
	return &TrainingStats{
		MatesByDiff: make(map[string]int),
	}
}

// GameResult represents the result of a completed endgame
type GameResult struct {
	Mated      bool // the attacker delivered mate
	Draw       bool
	Difficulty Difficulty
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database in a specific directory.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves training statistics
func (s *Storage) SaveStats(stats *TrainingStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads training statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*TrainingStats, error) {
	stats := NewTrainingStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a completed endgame and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	diffKey := "easy"
	switch result.Difficulty {
	case DifficultyMedium:
		diffKey = "medium"
	case DifficultyHard:
		diffKey = "hard"
	}

	if result.Draw {
		stats.Draws++
		stats.CurrentStreak = 0
	} else if result.Mated {
		stats.Mates++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
		stats.MatesByDiff[diffKey]++
	} else {
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// GetMateRate returns the mate conversion rate as a percentage (0-100)
func (s *TrainingStats) GetMateRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Mates) / float64(s.GamesPlayed) * 100
}
