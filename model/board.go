package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a structurally invalid input (non-positive depth, malformed FEN...).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalMove reports a move that cannot be played on a board.
	ErrIllegalMove = errors.New("illegal move")
)

// Board is the capability set a tested library exposes to the harness.
//
// M is the library's move type. The harness never inspects a move, it only hands it back
// to the board that produced it.
type Board[M any] interface {
	// Moves returns the moves available in the current position.
	// The board is free to return legal or pseudo-legal moves, see MovesLegal.
	// The order of the returned moves is the order of perft divide entries.
	Moves() []M

	// MovesLegal reports whether Moves already filters out illegal moves.
	MovesLegal() bool

	// MakeMove plays mv. It returns false and leaves the board unchanged if mv is illegal.
	MakeMove(mv M) bool

	// UnmakeMove reverts the last successful MakeMove.
	UnmakeMove()
}

// MoveParser is implemented by boards that can build a move from its UCI text
// (origin square, destination square, optional promotion letter).
// ToMove must fail with ErrIllegalMove for a move the board would not enumerate.
type MoveParser[M any] interface {
	ToMove(uci string) (M, error)
}

// UCI returns the UCI text of a move. Moves are expected to implement fmt.Stringer with
// their UCI representation.
func UCI[M any](mv M) string {
	if s, ok := any(mv).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(mv)
}

// ToMove converts a UCI move to a move of the board.
// Boards implementing MoveParser do the conversion themselves; otherwise the move is searched
// among the board's Moves.
func ToMove[M any](b Board[M], uci string) (M, error) {
	if p, ok := b.(MoveParser[M]); ok {
		return p.ToMove(uci)
	}
	for _, mv := range b.Moves() {
		if UCI(mv) == uci {
			return mv, nil
		}
	}
	var zero M
	return zero, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// IsLegal reports whether mv can be played on b. The board is left unchanged.
func IsLegal[M any](b Board[M], mv M) bool {
	if b.MovesLegal() {
		return true
	}
	if !b.MakeMove(mv) {
		return false
	}
	b.UnmakeMove()
	return true
}

// IsLegalUCI reports whether the UCI move can be played on b.
func IsLegalUCI[M any](b Board[M], uci string) bool {
	mv, err := ToMove(b, uci)
	if err != nil {
		return false
	}
	return IsLegal(b, mv)
}
