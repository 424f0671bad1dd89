package engine

import (
	"testing"

	"github.com/hailam/rookmate/internal/board"
)

func TestOrderMateFirst(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "1k6/8/1K6/8/8/8/8/7R w - - 0 1")
	moves := pos.LegalMoves()
	mo.Order(pos, moves, true)

	u := pos.MakeMove(moves[0])
	mate := pos.IsCheckmate()
	pos.UnmakeMove(u)
	if !mate {
		t.Errorf("first ordered move %s should deliver mate", board.MoveString(moves[0]))
	}
	if got := board.MoveString(moves[0]); got != "h1h8" {
		t.Errorf("first ordered move = %s, want h1h8", got)
	}
}

func TestOrderMinimizingReverses(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "1k6/8/1K6/8/8/8/8/7R w - - 0 1")
	moves := pos.LegalMoves()
	mo.Order(pos, moves, false)

	// Ascending order: the mating move lands last.
	last := moves[len(moves)-1]
	u := pos.MakeMove(last)
	mate := pos.IsCheckmate()
	pos.UnmakeMove(u)
	if !mate {
		t.Errorf("last ordered move %s should deliver mate", board.MoveString(last))
	}
}

func TestOrderRestoresPosition(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	fen, clock := pos.FEN(), pos.HalfMoveClock()

	moves := pos.LegalMoves()
	mo.Order(pos, moves, true)

	if pos.FEN() != fen || pos.HalfMoveClock() != clock {
		t.Errorf("position disturbed by ordering: %q clock=%d", pos.FEN(), pos.HalfMoveClock())
	}
}

func TestOrderIsPermutation(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	moves := pos.LegalMoves()
	before := make(map[board.Move]int)
	for _, m := range moves {
		before[m]++
	}

	mo.Order(pos, moves, true)

	after := make(map[board.Move]int)
	for _, m := range moves {
		after[m]++
	}
	if len(before) != len(after) {
		t.Fatalf("move multiset changed: %d -> %d distinct", len(before), len(after))
	}
	for m, n := range before {
		if after[m] != n {
			t.Errorf("move %s count changed", board.MoveString(m))
		}
	}
}

func TestScoreMoveDefenderCentralisation(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")

	toward := mo.scoreMove(pos, board.MustParseMove("e8e7"))
	along := mo.scoreMove(pos, board.MustParseMove("e8d8"))
	if toward <= along {
		t.Errorf("e8e7 (towards centre) scored %d, e8d8 scored %d; want e8e7 higher", toward, along)
	}
	if toward != 7 || along != 4 {
		t.Errorf("probe scores = %d, %d; want 7, 4", toward, along)
	}
}

func TestScoreMoveCapture(t *testing.T) {
	prof := AttackerWithRook(board.White)
	mo := NewMoveOrderer(&prof)

	pos := mustFEN(t, "k7/8/8/8/8/2r5/1K6/8 w - - 0 1")
	capture := board.MustParseMove("b2c3")
	quiet := board.MustParseMove("b2b1")
	if cs, qs := mo.scoreMove(pos, capture), mo.scoreMove(pos, quiet); cs <= qs {
		t.Errorf("capture scored %d, quiet %d; want capture higher", cs, qs)
	}
}
