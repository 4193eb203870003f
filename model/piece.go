package model

import "fmt"

// Piece is a colored piece code: positive for white, negative for black, None for an empty square.
type Piece int8

const (
	None   Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	Bishop Piece = 3
	Rook   Piece = 4
	Queen  Piece = 5
	King   Piece = 6
)

// Type drops the color of the piece.
func (p Piece) Type() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// White reports whether p is a white piece.
func (p Piece) White() bool { return p > 0 }

// Black returns the black piece of the same type.
func (p Piece) Black() Piece { return -p.Type() }

func (p Piece) String() string {
	const letters = ".pnbrqk"
	t := p.Type()
	if t > King {
		return fmt.Sprintf("piece(%d)", int8(p))
	}
	c := letters[t]
	if p.White() {
		c -= 'a' - 'A'
	}
	return string(c)
}

// SquareIndex converts an algebraic square ("e4") to a 0..63 index, a1 being 0 and h8 63.
func SquareIndex(square string) (int, error) {
	if len(square) != 2 {
		return 0, fmt.Errorf("%w: invalid square %q", ErrInvalidArgument, square)
	}
	file, rank := square[0], square[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: invalid square %q", ErrInvalidArgument, square)
	}
	return int(file-'a') + int(rank-'1')*8, nil
}
