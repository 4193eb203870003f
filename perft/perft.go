// Package perft counts the leaves of the move tree of a board (https://www.chessprogramming.org/Perft).
package perft

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"chess-test-utils/model"
)

// Entry is the number of leaves reachable after one root move (a perft "divide" line).
type Entry[M any] struct {
	Move  M
	Count uint64
}

func (e Entry[M]) String() string {
	return fmt.Sprintf("%s: %d", model.UCI(e.Move), e.Count)
}

// Result is the outcome of a Divide call.
// Entries are in root move enumeration order; root moves without leaves are omitted.
type Result[M any] struct {
	Entries []Entry[M]
}

// Leaves returns the total number of leaves, the sum of all entry counts.
func (r Result[M]) Leaves() uint64 {
	var n uint64
	for _, e := range r.Entries {
		n += e.Count
	}
	return n
}

// Sorted returns a copy of the entries sorted by move UCI text, for stable output.
func (r Result[M]) Sorted() []Entry[M] {
	sorted := slices.Clone(r.Entries)
	slices.SortStableFunc(sorted, func(a, b Entry[M]) int {
		return strings.Compare(model.UCI(a.Move), model.UCI(b.Move))
	})
	return sorted
}

func (r Result[M]) String() string {
	var sb strings.Builder
	for _, e := range r.Sorted() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total: %d", r.Leaves())
	return sb.String()
}

// Divide counts the move sequences of length depth playable from the current position of b,
// split by root move.
// depth must be > 0. The board is back in its initial state when Divide returns.
func Divide[M any](b model.Board[M], depth int) (Result[M], error) {
	if depth <= 0 {
		return Result[M]{}, fmt.Errorf("%w: search depth must be > 0, got %d", model.ErrInvalidArgument, depth)
	}
	moves := b.Moves()
	entries := make([]Entry[M], 0, len(moves))
	for _, mv := range moves {
		if n := rootLeaves(b, mv, depth-1); n != 0 {
			entries = append(entries, Entry[M]{Move: mv, Count: n})
		}
	}
	return Result[M]{Entries: entries}, nil
}

// Count is Divide without the breakdown.
func Count[M any](b model.Board[M], depth int) (uint64, error) {
	r, err := Divide(b, depth)
	if err != nil {
		return 0, err
	}
	return r.Leaves(), nil
}

func rootLeaves[M any](b model.Board[M], mv M, depth int) uint64 {
	if depth == 0 && b.MovesLegal() {
		return 1
	}
	if !b.MakeMove(mv) {
		return 0
	}
	n := leaves(b, depth)
	b.UnmakeMove()
	return n
}

func leaves[M any](b model.Board[M], depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.Moves()
	if depth == 1 && b.MovesLegal() {
		return uint64(len(moves))
	}
	var n uint64
	for _, mv := range moves {
		if b.MakeMove(mv) {
			n += leaves(b, depth-1)
			b.UnmakeMove()
		}
	}
	return n
}
