package board

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// StartFEN is the standard chess starting position.
const StartFEN = dragontoothmg.Startpos

// Position wraps a dragontoothmg board and owns the state the generator does
// not expose: the fifty-move clock and the hash history needed for draw
// claims. The search borrows a Position for the duration of one call and must
// hand it back byte-for-byte identical, which the MakeMove/UnmakeMove pair
// guarantees.
type Position struct {
	bd dragontoothmg.Board

	// Fifty-move counter in half-moves, reset by captures and pawn moves.
	halfmove int

	// Zobrist hashes of every position seen on the path here, including
	// the current one. Used for threefold-repetition claims.
	keys []uint64
}

// Undo holds what UnmakeMove needs to restore a position exactly.
type Undo struct {
	unapply  func()
	halfmove int
}

// NewPosition creates the standard chess starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen %q: want at least 4 fields, got %d", fen, len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen %q: want 8 ranks, got %d", fen, len(ranks))
	}
	if strings.Count(fields[0], "K") != 1 || strings.Count(fields[0], "k") != 1 {
		return nil, fmt.Errorf("fen %q: each side must have exactly one king", fen)
	}

	// dragontoothmg wants all six fields.
	if len(fields) == 4 {
		fields = append(fields, "0")
	}
	if len(fields) == 5 {
		fields = append(fields, "1")
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("fen %q: bad halfmove clock %q", fen, fields[4])
	}

	p := &Position{
		bd:       dragontoothmg.ParseFen(strings.Join(fields, " ")),
		halfmove: halfmove,
	}
	p.keys = append(p.keys, p.bd.Hash())
	return p, nil
}

// NewEndgame builds a king+rook vs king position: the attacker has the rook.
// The defender's remaining squares are empty. Mirrors of the classic training
// setup are produced by passing Black as the attacker.
func NewEndgame(attacker Color, king, rook, defenderKing Square, sideToMove Color) (*Position, error) {
	if king == rook || king == defenderKing || rook == defenderKing {
		return nil, fmt.Errorf("endgame squares must be distinct")
	}
	if ChebyshevDistance(king, defenderKing) <= 1 {
		return nil, fmt.Errorf("kings may not be adjacent")
	}
	if sideToMove == attacker && rookAttacks(rook, defenderKing, king) {
		return nil, fmt.Errorf("defender may not start in check with the attacker to move")
	}

	grid := [64]byte{}
	if attacker == White {
		grid[king], grid[rook], grid[defenderKing] = 'K', 'R', 'k'
	} else {
		grid[king], grid[rook], grid[defenderKing] = 'k', 'r', 'K'
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := grid[NewSquare(file, rank)]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	stm := "w"
	if sideToMove == Black {
		stm = "b"
	}
	return ParseFEN(sb.String() + " " + stm + " - - 0 1")
}

// rookAttacks reports whether a rook on from attacks target, with blocker the
// only other piece that could stand between them.
func rookAttacks(from, target, blocker Square) bool {
	if from.File() != target.File() && from.Rank() != target.Rank() {
		return false
	}
	if blocker.File() == from.File() && from.File() == target.File() {
		lo, hi := from.Rank(), target.Rank()
		if lo > hi {
			lo, hi = hi, lo
		}
		if blocker.Rank() > lo && blocker.Rank() < hi {
			return false
		}
	}
	if blocker.Rank() == from.Rank() && from.Rank() == target.Rank() {
		lo, hi := from.File(), target.File()
		if lo > hi {
			lo, hi = hi, lo
		}
		if blocker.File() > lo && blocker.File() < hi {
			return false
		}
	}
	return true
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	if p.bd.Wtomove {
		return White
	}
	return Black
}

// LegalMoves enumerates the legal moves for the side to move.
func (p *Position) LegalMoves() []Move {
	return p.bd.GenerateLegalMoves()
}

// MakeMove applies a legal move and returns the undo token that restores the
// position exactly. Every MakeMove must be paired with UnmakeMove before the
// function that applied it returns.
func (p *Position) MakeMove(m Move) Undo {
	u := Undo{halfmove: p.halfmove}

	resets := p.IsCapture(m) || p.isPawnMove(m)
	u.unapply = p.bd.Apply(m)

	if resets {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	p.keys = append(p.keys, p.bd.Hash())
	return u
}

// UnmakeMove reverses the paired MakeMove.
func (p *Position) UnmakeMove(u Undo) {
	u.unapply()
	p.halfmove = u.halfmove
	p.keys = p.keys[:len(p.keys)-1]
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.bd.OurKingInCheck()
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.bd.OurKingInCheck() && len(p.bd.GenerateLegalMoves()) == 0
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.bd.OurKingInCheck() && len(p.bd.GenerateLegalMoves()) == 0
}

// IsInsufficientMaterial returns true when neither side can mate: bare
// kings, or king vs king and a single minor piece.
func (p *Position) IsInsufficientMaterial() bool {
	w, b := p.bd.White, p.bd.Black
	if w.Pawns|b.Pawns|w.Rooks|b.Rooks|w.Queens|b.Queens != 0 {
		return false
	}
	minors := bits.OnesCount64(w.Knights|w.Bishops) + bits.OnesCount64(b.Knights|b.Bishops)
	return minors <= 1
}

// CanClaimDraw returns true if the side to move could claim a draw by the
// fifty-move rule or threefold repetition.
func (p *Position) CanClaimDraw() bool {
	if p.halfmove >= 100 {
		return true
	}
	current := p.keys[len(p.keys)-1]
	seen := 0
	for _, k := range p.keys {
		if k == current {
			seen++
		}
	}
	return seen >= 3
}

// IsGameOver returns true if the position is terminal: checkmate, stalemate,
// dead material, or a claimable draw.
func (p *Position) IsGameOver() bool {
	if p.IsInsufficientMaterial() || p.CanClaimDraw() {
		return true
	}
	return len(p.bd.GenerateLegalMoves()) == 0
}

// KingSquare returns the location of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	bb := p.bd.White.Kings
	if c == Black {
		bb = p.bd.Black.Kings
	}
	return Square(bits.TrailingZeros64(bb))
}

// RookSquare returns the location of the given color's rook, if any. With
// several rooks it returns the lowest square; the endgames this engine plays
// have at most one.
func (p *Position) RookSquare(c Color) (Square, bool) {
	bb := p.bd.White.Rooks
	if c == Black {
		bb = p.bd.Black.Rooks
	}
	if bb == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(bb)), true
}

// IsCapture reports whether the move captures a piece (including en passant).
func (p *Position) IsCapture(m Move) bool {
	to := Square(m.To())
	if (p.bd.White.All|p.bd.Black.All)>>to&1 != 0 {
		return true
	}
	// En passant: a pawn moving diagonally onto an empty square.
	return p.isPawnMove(m) && Square(m.From()).File() != to.File()
}

// IsCastle reports whether the move is a castling move (king moves two files).
func (p *Position) IsCastle(m Move) bool {
	from, to := Square(m.From()), Square(m.To())
	kings := p.bd.White.Kings | p.bd.Black.Kings
	if kings>>from&1 == 0 {
		return false
	}
	df := from.File() - to.File()
	return df == 2 || df == -2
}

func (p *Position) isPawnMove(m Move) bool {
	return (p.bd.White.Pawns|p.bd.Black.Pawns)>>Square(m.From())&1 != 0
}

// HalfMoveClock returns the fifty-move counter in half-moves.
func (p *Position) HalfMoveClock() int {
	return p.halfmove
}

// Hash returns the Zobrist hash of the current position.
func (p *Position) Hash() uint64 {
	return p.bd.Hash()
}

// Key returns the exact position identity for caching: piece placement, side
// to move, castling rights and en passant target — the first four FEN fields,
// without the move counters.
func (p *Position) Key() string {
	fields := strings.Fields(p.bd.ToFen())
	return strings.Join(fields[:4], " ")
}

// FEN returns the full FEN of the position. The halfmove field reflects this
// Position's own fifty-move clock.
func (p *Position) FEN() string {
	fields := strings.Fields(p.bd.ToFen())
	fullmove := "1"
	if len(fields) >= 6 {
		fullmove = fields[5]
	}
	return strings.Join(fields[:4], " ") + " " + strconv.Itoa(p.halfmove) + " " + fullmove
}

// pieceCharAt returns the FEN letter of the piece on sq, or 0 when empty.
func (p *Position) pieceCharAt(sq Square) byte {
	sets := []struct {
		bb uint64
		c  byte
	}{
		{p.bd.White.Pawns, 'P'}, {p.bd.White.Knights, 'N'}, {p.bd.White.Bishops, 'B'},
		{p.bd.White.Rooks, 'R'}, {p.bd.White.Queens, 'Q'}, {p.bd.White.Kings, 'K'},
		{p.bd.Black.Pawns, 'p'}, {p.bd.Black.Knights, 'n'}, {p.bd.Black.Bishops, 'b'},
		{p.bd.Black.Rooks, 'r'}, {p.bd.Black.Queens, 'q'}, {p.bd.Black.Kings, 'k'},
	}
	for _, s := range sets {
		if s.bb>>sq&1 != 0 {
			return s.c
		}
	}
	return 0
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			c := p.pieceCharAt(NewSquare(file, rank))
			if c == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(c)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove())
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfmove)
	return sb.String()
}
