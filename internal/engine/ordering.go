package engine

import (
	"sort"

	"github.com/hailam/rookmate/internal/board"
)

// Move ordering priorities. These shape search efficiency only; they never
// change which value the search returns, just how fast cutoffs arrive and
// which of several equally-scored moves is met first.
const (
	orderMateScore    = 10000
	orderCheckScore   = 50
	orderCaptureScore = 30
	orderCastleBonus  = 40
)

// MoveOrderer orders candidate moves with a cheap one-ply probe: each move is
// applied, classified (mate, check, capture, castle, defending-king
// centralisation), and undone, restoring the position exactly.
type MoveOrderer struct {
	profile *Profile
}

// NewMoveOrderer creates a move orderer for the given profile.
func NewMoveOrderer(profile *Profile) *MoveOrderer {
	return &MoveOrderer{profile: profile}
}

// Order sorts moves in place: descending probe score for the maximizing
// side, ascending for the minimizing side. The sort is stable so that moves
// the rules engine generated earlier keep priority among equals.
func (mo *MoveOrderer) Order(pos *board.Position, moves []board.Move, maximizing bool) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = mo.scoreMove(pos, m)
	}

	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if maximizing {
			return scores[idx[a]] > scores[idx[b]]
		}
		return scores[idx[a]] < scores[idx[b]]
	})

	sorted := make([]board.Move, len(moves))
	for i, j := range idx {
		sorted[i] = moves[j]
	}
	copy(moves, sorted)
}

// scoreMove probes one move. Capture and castle are classified before the
// move is applied (they depend on the pre-move board), the rest after.
func (mo *MoveOrderer) scoreMove(pos *board.Position, m board.Move) int {
	capture := pos.IsCapture(m)
	castle := pos.IsCastle(m)
	defenderKingMove := pos.SideToMove() != mo.profile.Attacker &&
		board.Square(m.From()) == pos.KingSquare(mo.profile.Attacker.Other())

	u := pos.MakeMove(m)

	score := 0
	switch {
	case pos.IsCheckmate():
		score = orderMateScore
	case pos.InCheck():
		score = orderCheckScore
	case capture:
		score = orderCaptureScore
	}
	if castle {
		score += orderCastleBonus
	}

	// The defending king fights for the centre; probe its destination.
	if defenderKingMove {
		score += (30 - 3*board.CenterDistance2(board.Square(m.To()))) / 2
	}

	pos.UnmakeMove(u)
	return score
}
