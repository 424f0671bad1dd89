package engine

import (
	"time"

	"github.com/hailam/rookmate/internal/board"
)

// SearchInfo reports one completed iterative-deepening level. Diagnostics
// only; game logic never consumes it.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	Move  board.Move
}

// SearchLimits specifies constraints on a move decision.
type SearchLimits struct {
	Depth    int           // Maximum depth (0 = engine maximum)
	MoveTime time.Duration // Soft time budget (0 = no limit)
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // shallow, quick replies
	Medium
	Hard
)

// DifficultySettings maps difficulty to search limits.
var DifficultySettings = map[Difficulty]SearchLimits{
	Easy:   {Depth: 2, MoveTime: 500 * time.Millisecond},
	Medium: {Depth: 4, MoveTime: 2 * time.Second},
	Hard:   {Depth: 6, MoveTime: 5 * time.Second},
}

// Engine is the move-selection engine: the single entry point the
// surrounding game loop consumes. It never mutates a position beyond the
// paired make/unmake discipline internal to search.
type Engine struct {
	profile    Profile
	difficulty Difficulty

	// OnInfo, when set, is called after each completed depth.
	OnInfo func(SearchInfo)
}

// NewEngine creates an engine playing with the given evaluator profile.
func NewEngine(profile Profile) *Engine {
	return &Engine{
		profile:    profile,
		difficulty: Medium,
	}
}

// SetDifficulty sets the engine difficulty used by Search.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Profile returns the engine's evaluator profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Search finds the best move under the current difficulty's limits.
func (e *Engine) Search(pos *board.Position) board.Move {
	return e.SearchWithLimits(pos, DifficultySettings[e.difficulty])
}

// SearchWithLimits finds the best move with specific search limits.
func (e *Engine) SearchWithLimits(pos *board.Position, limits SearchLimits) board.Move {
	return e.ChooseMove(pos, limits.Depth, limits.MoveTime)
}

// ChooseMove picks a move by iterative deepening up to maxDepth under a soft
// wall-clock budget. It returns NoMove only when the game is already over at
// the root; callers treat that as "nothing to play", not a failure.
//
// A fresh transposition cache is scoped to this one decision. The budget is
// checked only between completed depth levels, so only a fully completed
// level's result is ever returned.
func (e *Engine) ChooseMove(pos *board.Position, maxDepth int, timeBudget time.Duration) board.Move {
	if pos.IsGameOver() {
		return board.NoMove
	}
	moves := pos.LegalMoves()

	// Fast path: a move that mates on the spot needs no search.
	for _, m := range moves {
		u := pos.MakeMove(m)
		mate := pos.IsCheckmate()
		pos.UnmakeMove(u)
		if mate {
			return m
		}
	}

	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	tm := NewTimeManager(timeBudget)
	searcher := NewSearcher(&e.profile, NewCache())
	maximizing := pos.SideToMove() == e.profile.Attacker

	best := board.NoMove
	for depth := 1; depth <= maxDepth; depth++ {
		score, move := searcher.Search(pos, depth, -Infinity, Infinity, maximizing)
		if move != board.NoMove {
			best = move
		}

		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth: depth,
				Score: score,
				Nodes: searcher.Nodes(),
				Time:  tm.Elapsed(),
				Move:  move,
			})
		}

		if tm.Exceeded() {
			break
		}
	}

	return best
}

// Evaluate returns the static evaluation of a position under the engine's
// profile, from the attacker's perspective.
func (e *Engine) Evaluate(pos *board.Position) int {
	return e.profile.Evaluate(pos)
}
