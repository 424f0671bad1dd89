package engine

import (
	"github.com/hailam/rookmate/internal/board"
)

// Searcher performs depth-bounded minimax with alpha-beta pruning. It is
// created fresh for each move decision together with its cache.
type Searcher struct {
	profile *Profile
	orderer *MoveOrderer
	cache   *Cache
	nodes   uint64
}

// NewSearcher creates a searcher for the given profile and per-decision cache.
func NewSearcher(profile *Profile, cache *Cache) *Searcher {
	return &Searcher{
		profile: profile,
		orderer: NewMoveOrderer(profile),
		cache:   cache,
	}
}

// Nodes returns the number of nodes visited so far.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search returns the best attainable value for the searched subtree and the
// move achieving it at this node (NoMove at leaves and terminal nodes).
// Pruning is an optimization only: the returned pair always equals what an
// unpruned minimax over the same tree would return. Ties keep the move met
// first in the ordered move list. The position is restored to its pre-call
// state on every exit path, including cutoffs.
//
// The cache only ever holds window-independent values: leaf and terminal
// evaluations, plus interior results computed under a full window. Every
// entry is therefore an exact score and may be returned under any (alpha,
// beta) without disturbing the minimax equivalence.
func (s *Searcher) Search(pos *board.Position, depth, alpha, beta int, maximizing bool) (int, board.Move) {
	s.nodes++

	key := pos.Key()
	if score, ok := s.cache.Lookup(key, depth); ok {
		return score, board.NoMove
	}

	if depth == 0 || pos.IsGameOver() {
		score := s.profile.Evaluate(pos)
		s.cache.Store(key, depth, score)
		return score, board.NoMove
	}

	fullWindow := alpha <= -Infinity && beta >= Infinity

	moves := pos.LegalMoves()
	s.orderer.Order(pos, moves, maximizing)

	var bestMove board.Move
	var bestVal int

	if maximizing {
		bestVal = -Infinity
		for _, m := range moves {
			u := pos.MakeMove(m)
			score, _ := s.Search(pos, depth-1, alpha, beta, false)
			pos.UnmakeMove(u)

			if score > bestVal {
				bestVal = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		bestVal = Infinity
		for _, m := range moves {
			u := pos.MakeMove(m)
			score, _ := s.Search(pos, depth-1, alpha, beta, true)
			pos.UnmakeMove(u)

			if score < bestVal {
				bestVal = score
				bestMove = m
			}
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				break
			}
		}
	}

	// With infinite bounds no cutoff can fire, so the loop ran to
	// completion and bestVal is the exact minimax value of this subtree.
	if fullWindow {
		s.cache.Store(key, depth, bestVal)
	}

	return bestVal, bestMove
}
