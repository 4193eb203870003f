// Package treeboard is a synthetic model.Board used to test the harness without a chess library.
//
// Positions are paths in a tree whose width depends on the ply. Some moves are illegal: in
// pseudo-legal mode they are enumerated and rejected by MakeMove, in legal mode they are filtered
// out of Moves.
package treeboard

import "strconv"

// Move is the index of a child in the tree.
type Move int

func (m Move) String() string { return "m" + strconv.Itoa(int(m)) }

// Board walks a synthetic move tree.
type Board struct {
	// Widths gives the number of moves at each ply, cycling when the path is longer.
	Widths []int
	// IllegalEvery makes every n-th move illegal (0 disables illegal moves).
	IllegalEvery int
	// Legal makes Moves filter illegal moves out.
	Legal bool

	path  []Move
	Makes int
}

// New returns a board in pseudo-legal mode.
func New(widths []int, illegalEvery int) *Board {
	return &Board{Widths: widths, IllegalEvery: illegalEvery}
}

func (b *Board) width() int {
	if len(b.Widths) == 0 {
		return 0
	}
	return b.Widths[len(b.path)%len(b.Widths)]
}

func (b *Board) illegal(m Move) bool {
	if b.IllegalEvery <= 0 {
		return false
	}
	sum := int(m)
	for _, p := range b.path {
		sum += int(p)
	}
	return sum%b.IllegalEvery == b.IllegalEvery-1
}

func (b *Board) Moves() []Move {
	n := b.width()
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		m := Move(i)
		if b.Legal && b.illegal(m) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

func (b *Board) MovesLegal() bool { return b.Legal }

func (b *Board) MakeMove(m Move) bool {
	if int(m) < 0 || int(m) >= b.width() || b.illegal(m) {
		return false
	}
	b.Makes++
	b.path = append(b.path, m)
	return true
}

func (b *Board) UnmakeMove() {
	if len(b.path) == 0 {
		panic("treeboard: unmake without make")
	}
	b.path = b.path[:len(b.path)-1]
}

// Ply is the number of moves currently played.
func (b *Board) Ply() int { return len(b.path) }

// Leaves counts the legal move sequences of the given length by brute force.
func (b *Board) Leaves(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for i := 0; i < b.width(); i++ {
		m := Move(i)
		if b.illegal(m) {
			continue
		}
		b.path = append(b.path, m)
		n += b.Leaves(depth - 1)
		b.path = b.path[:len(b.path)-1]
	}
	return n
}
