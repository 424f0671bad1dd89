package board

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// Move is the rules engine's move encoding. It is an immutable value:
// from-square, to-square and an optional promotion piece. Derived flags
// (capture, castle) are answered by the Position, since they depend on the
// board the move is played on.
type Move = dragontoothmg.Move

// NoMove represents an invalid or null move.
const NoMove Move = 0

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseMove parses a move in coordinate notation (e.g. "e2e4", "e7e8q").
func ParseMove(s string) (Move, error) {
	return dragontoothmg.ParseMove(s)
}

// MoveString formats a move in coordinate notation.
func MoveString(m Move) string {
	if m == NoMove {
		return "0000"
	}
	s := Square(m.From()).String() + Square(m.To()).String()
	switch m.Promote() {
	case dragontoothmg.Knight:
		s += "n"
	case dragontoothmg.Bishop:
		s += "b"
	case dragontoothmg.Rook:
		s += "r"
	case dragontoothmg.Queen:
		s += "q"
	}
	return s
}

// MustParseMove is ParseMove for known-good literals; it panics on error.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(fmt.Sprintf("bad move literal %q: %v", s, err))
	}
	return m
}
