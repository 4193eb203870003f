// Package fen compares FEN strings (https://en.wikipedia.org/wiki/Forsyth%E2%80%93Edwards_Notation)
// with relaxed equivalence rules.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"chess-test-utils/model"
)

// StartPosition is the standard start position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	placementField = iota
	sideField
	castlingField
	enPassantField
	halfMoveField
	moveNumberField
	fieldCount
)

// Fields splits a FEN into its six space separated fields.
func Fields(fen string) ([]string, error) {
	fields := strings.Split(fen, " ")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: FEN should have %d parts, got %d in %q", model.ErrInvalidArgument, fieldCount, len(fields), fen)
	}
	return fields, nil
}

// Comparator checks FEN equality.
//
// By default, FENs are compared strictly. Turning StrictCastling off accepts equivalent
// castling rights notations ("KQkq" and "HEhe" on nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR).
// Turning StrictMoveNumber off in addition ignores the fullmove number.
// StrictMoveNumber is only consulted when StrictCastling is off.
//
// A Comparator may be shared between goroutines as long as its fields are not modified.
type Comparator struct {
	StrictCastling   bool `yaml:"strict_castling"`
	StrictMoveNumber bool `yaml:"strict_move_number"`
}

// NewComparator returns a strict comparator.
func NewComparator() *Comparator {
	return &Comparator{StrictCastling: true, StrictMoveNumber: true}
}

// WithStrictCastling sets StrictCastling and returns c.
func (c *Comparator) WithStrictCastling(strict bool) *Comparator {
	c.StrictCastling = strict
	return c
}

// WithStrictMoveNumber sets StrictMoveNumber and returns c.
func (c *Comparator) WithStrictMoveNumber(strict bool) *Comparator {
	c.StrictMoveNumber = strict
	return c
}

// AreEqual reports whether fen1 and fen2 denote the same position.
// In relaxed mode, an error wrapping model.ErrInvalidArgument is returned if a FEN does not
// have exactly six fields.
func (c *Comparator) AreEqual(fen1, fen2 string) (bool, error) {
	if c.StrictCastling {
		return fen1 == fen2, nil
	}
	f1, err := Fields(fen1)
	if err != nil {
		return false, err
	}
	f2, err := Fields(fen2)
	if err != nil {
		return false, err
	}
	for _, i := range []int{placementField, sideField, enPassantField, halfMoveField} {
		if f1[i] != f2[i] {
			return false, nil
		}
	}
	if c.StrictMoveNumber && f1[moveNumberField] != f2[moveNumberField] {
		return false, nil
	}
	return AreCastlingRightsEquivalent(f1[castlingField], f2[castlingField], f1[placementField]), nil
}

// AreCastlingRightsEquivalent reports whether two castling rights fields are equivalent on the
// given piece placement. Rights are compared one by one; a conventional right (K, Q, k, q) is
// equivalent to the file letter of the outermost rook on its wing.
func AreCastlingRightsEquivalent(rights1, rights2, placement string) bool {
	if rights1 == rights2 {
		return true
	}
	if len(rights1) != len(rights2) {
		return false
	}
	ranks := strings.Split(placement, "/")
	for i := 0; i < len(rights1); i++ {
		if !sameRight(rights1[i], rights2[i], ranks) {
			return false
		}
	}
	return true
}

func sameRight(r1, r2 byte, ranks []string) bool {
	if r1 == r2 {
		return true
	}
	white := isUpper(r1)
	if white != isUpper(r2) {
		return false
	}
	// White castles on the last rank of the placement, black on the first one.
	home := ranks[0]
	if white {
		home = ranks[len(ranks)-1]
		r1, r2 = toLower(r1), toLower(r2)
	}
	switch {
	case r1 == 'k' || r2 == 'k':
		return matchesOuterRook(home, other(r1, r2, 'k'), true)
	case r1 == 'q' || r2 == 'q':
		return matchesOuterRook(home, other(r1, r2, 'q'), false)
	}
	return false
}

func other(r1, r2, symbol byte) byte {
	if r1 == symbol {
		return r2
	}
	return r1
}

func matchesOuterRook(rank string, file byte, kingSide bool) bool {
	index := OuterRookFile(rank, kingSide)
	return index >= 0 && file == 'a'+byte(index)
}

// OuterRookFile returns the file index (0 for 'a') of the outermost rook on a wing of a FEN rank.
// The rank is scanned from the edge of the wing towards the king; -1 is returned if the king is
// met before any rook.
func OuterRookFile(rank string, kingSide bool) int {
	if kingSide {
		file := fileCount(rank) - 1
		for i := len(rank) - 1; i >= 0; i-- {
			switch c := rank[i]; {
			case toLower(c) == 'r':
				return file
			case toLower(c) == 'k':
				return -1
			case isDigit(c):
				file -= int(c - '0')
			default:
				file--
			}
		}
		return file
	}
	file := 0
	for i := 0; i < len(rank); i++ {
		switch c := rank[i]; {
		case toLower(c) == 'r':
			return file
		case toLower(c) == 'k':
			return -1
		case isDigit(c):
			file += int(c - '0')
		default:
			file++
		}
	}
	return file
}

// fileCount returns the number of squares described by a FEN rank.
func fileCount(rank string) int {
	n := 0
	for i := 0; i < len(rank); i++ {
		if isDigit(rank[i]) {
			n += int(rank[i] - '0')
		} else {
			n++
		}
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return unicode.IsUpper(rune(c)) }

func toLower(c byte) byte { return byte(unicode.ToLower(rune(c))) }
