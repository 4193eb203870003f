package model

import (
	"fmt"
	"strings"
)

// Variant is a chess variant a board may be built for.
type Variant uint8

const (
	Standard Variant = iota
	// Chess960 is Fischer random chess (https://en.wikipedia.org/wiki/Chess960).
	Chess960
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Chess960:
		return "chess960"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant is the inverse of Variant.String. It is case insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "chess960", "960":
		return Chess960, nil
	}
	return Standard, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, s)
}

// Adapter bridges a tested library and the harness: it builds the library's boards.
type Adapter[B Board[M], M any] interface {
	// FENToBoard builds a board from a FEN string.
	FENToBoard(fen string, variant Variant) (B, error)
}

// VariantSupporter is implemented by adapters that declare which variants they support.
// An adapter that does not implement it supports Standard only.
type VariantSupporter interface {
	Supports(variant Variant) bool
}

// Supports reports whether adapter supports variant.
func Supports(adapter any, variant Variant) bool {
	if vs, ok := adapter.(VariantSupporter); ok {
		return vs.Supports(variant)
	}
	return variant == Standard
}

// PieceScanner gets the piece on a square of a board.
type PieceScanner[B any] interface {
	// Piece returns the piece on square, given in algebraic notation ("e1").
	Piece(board B, square string) (Piece, error)
}

// SANConverter converts a move to Standard Algebraic Notation, as used in PGN
// (no "e.p." suffix for en passant captures).
type SANConverter[B, M any] interface {
	SAN(board B, mv M) (string, error)
}

// PGNConverter exports the game played on a board (start position and moves) as PGN.
type PGNConverter[B any] interface {
	PGN(board B) (string, error)
}
