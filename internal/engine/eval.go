// Package engine implements the endgame move-selection engine: a heuristic
// evaluator, probe-based move ordering, minimax search with alpha-beta
// pruning, and an iterative-deepening controller under a wall-clock budget.
package engine

import (
	"github.com/hailam/rookmate/internal/board"
)

// Score bounds. MateScore is the reserved sentinel for forced mate; it
// strictly dominates every heuristic value (the weighted terms sum to well
// under 1000). Draws score 0.
const (
	Infinity  = 11000
	MateScore = 10000
	MaxDepth  = 64
)

// Profile is the tunable weight set of the evaluator. The set of terms is
// fixed; the weights select the playing style. Attacker names the side with
// the rook. All scores are from the attacker's perspective: positive means
// the attacker is making progress.
type Profile struct {
	Attacker board.Color

	EdgeConfinement   int // per step the defending king is short of the centre
	RookSafety        int // per square of rook distance from the defending king
	RookAlignment     int // rook shares the defending king's file or rank
	RookAlignmentSafe int // extra alignment bonus when the rook is not adjacent
	KingProximity     int // per step of closeness between the kings
	KingAdjacent      int // penalty when the kings are adjacent
	Opposition        int // kings exactly two apart on a shared file or rank
	RookCentrality    int // per combined file+rank step toward the centre
	Check             int // flat bonus when the defender stands in check
}

// AttackerWithRook returns the profile tuned for pressing the mate with the
// rook: close in with the king, keep the rook safe and central.
func AttackerWithRook(attacker board.Color) Profile {
	return Profile{
		Attacker:          attacker,
		EdgeConfinement:   15,
		RookSafety:        5,
		RookAlignment:     10,
		RookAlignmentSafe: 5,
		KingProximity:     3,
		KingAdjacent:      30,
		Opposition:        25,
		RookCentrality:    2,
		Check:             15,
	}
}

// DefenderWithRook returns the profile tuned for the mirrored scenario where
// the rook side grinds the bare king down from the other color: heavier
// confinement and checking weights, no king-rush terms.
func DefenderWithRook(attacker board.Color) Profile {
	return Profile{
		Attacker:          attacker,
		EdgeConfinement:   15,
		RookAlignment:     20,
		RookAlignmentSafe: 10,
		KingAdjacent:      30,
		Opposition:        25,
		RookCentrality:    2,
		Check:             50,
	}
}

// Evaluate statically scores a position from the attacker's perspective.
// Terminal states take priority: checkmate is the signed mate sentinel,
// every draw is 0. A missing attacker rook scores neutral — the position is
// still legally well-formed, there is just nothing left to press with.
func (pr *Profile) Evaluate(pos *board.Position) int {
	if pos.IsCheckmate() {
		if pos.SideToMove() == pr.Attacker {
			return -MateScore
		}
		return MateScore
	}
	if pos.IsStalemate() || pos.IsInsufficientMaterial() || pos.CanClaimDraw() {
		return 0
	}

	rook, ok := pos.RookSquare(pr.Attacker)
	if !ok {
		return 0
	}

	defender := pr.Attacker.Other()
	atkKing := pos.KingSquare(pr.Attacker)
	defKing := pos.KingSquare(defender)

	score := 0

	// Confinement: the closer the defending king sits to an edge, the
	// better for the attacker.
	score += pr.EdgeConfinement * (4 - board.EdgeDistance(defKing))

	// Rook safety and alignment with the defending king.
	rookDist := board.ChebyshevDistance(rook, defKing)
	score += pr.RookSafety * rookDist
	if rook.File() == defKing.File() || rook.Rank() == defKing.Rank() {
		score += pr.RookAlignment
		if rookDist > 1 {
			score += pr.RookAlignmentSafe
		}
	}

	// King proximity and opposition. Walking straight into the enemy king
	// disrupts the technique, facing it at two squares is the goal.
	kingDist := board.ChebyshevDistance(atkKing, defKing)
	score += pr.KingProximity * (14 - kingDist)
	if kingDist <= 1 {
		score -= pr.KingAdjacent
	}
	if hasOpposition(atkKing, defKing) {
		score += pr.Opposition
	}

	// A central rook cuts off more of the board.
	score += pr.RookCentrality * board.CentralityHalf(rook) / 2

	if pos.InCheck() && pos.SideToMove() == defender {
		score += pr.Check
	}

	return score
}

// hasOpposition reports whether the kings stand exactly two squares apart on
// a shared file or rank.
func hasOpposition(a, b board.Square) bool {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return (df == 2 && dr == 0) || (dr == 2 && df == 0)
}
