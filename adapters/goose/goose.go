// Package goose plugs github.com/Oliverans/GooseEngineMG/goosemg into the harness.
//
// The adapter can expose either the legal or the pseudo-legal move generator of goosemg, which
// exercises both paths of the perft counter.
package goose

import (
	"fmt"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-test-utils/internal/movecache"
	"chess-test-utils/model"
)

type undo struct {
	mv gm.Move
	st gm.MoveState
}

// Board is a goosemg board with its undo stack.
type Board struct {
	board     *gm.Board
	pseudo    bool
	stack     []undo
	generated movecache.Cache[gm.Move]
}

var _ model.Board[gm.Move] = (*Board)(nil)

func (b *Board) Moves() []gm.Move {
	var moves []gm.Move
	if b.pseudo {
		moves = b.board.GeneratePseudoMoves()
	} else {
		moves = b.board.GenerateMoves()
	}
	b.generated.Store(len(b.stack), moves)
	return moves
}

func (b *Board) MovesLegal() bool { return !b.pseudo }

func (b *Board) MakeMove(mv gm.Move) bool {
	if !b.generates(mv) {
		return false
	}
	if b.pseudo && mv.Flags() == gm.FlagCastle && !b.canCastle(mv) {
		return false
	}
	side := b.board.SideToMove()
	ok, st := b.board.MakeMove(mv)
	if !ok {
		return false
	}
	// MakeMove only looks for discovered checks on the king rays.
	if b.pseudo && b.board.InCheck(side) {
		b.board.UnmakeMove(mv, st)
		return false
	}
	b.generated.Truncate(len(b.stack) + 1)
	b.stack = append(b.stack, undo{mv: mv, st: st})
	return true
}

func (b *Board) UnmakeMove() {
	n := len(b.stack)
	if n == 0 {
		panic("goose: UnmakeMove without MakeMove")
	}
	u := b.stack[n-1]
	b.board.UnmakeMove(u.mv, u.st)
	b.stack = b.stack[:n-1]
	b.generated.Truncate(n)
}

// FEN returns the FEN of the current position.
func (b *Board) FEN() string { return b.board.ToFEN() }

// generates checks mv against the moves of the current position. Moves are generated again
// only when Moves was not called since the position was reached.
func (b *Board) generates(mv gm.Move) bool {
	return b.generated.Contains(len(b.stack), mv, b.Moves)
}

// canCastle checks what goosemg's MakeMove leaves out for castling: the king may not castle
// out of check nor cross an attacked square. The destination square is checked by MakeMove.
func (b *Board) canCastle(mv gm.Move) bool {
	side := b.board.SideToMove()
	if b.board.InCheck(side) {
		return false
	}
	transit := (mv.From() + mv.To()) / 2
	return !b.board.IsSquareAttacked(transit, 1-side)
}

// Adapter builds goosemg boards.
type Adapter struct {
	// Pseudo selects the pseudo-legal move generator.
	Pseudo bool
}

var (
	_ model.Adapter[*Board, gm.Move] = Adapter{}
	_ model.PieceScanner[*Board]     = Adapter{}
)

func (a Adapter) FENToBoard(fen string, variant model.Variant) (*Board, error) {
	if variant != model.Standard {
		return nil, fmt.Errorf("%w: goosemg does not support %s", model.ErrInvalidArgument, variant)
	}
	board, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}
	return &Board{board: board, pseudo: a.Pseudo}, nil
}

func (Adapter) Supports(variant model.Variant) bool { return variant == model.Standard }

func (Adapter) Piece(b *Board, square string) (model.Piece, error) {
	sq, err := model.SquareIndex(square)
	if err != nil {
		return model.None, err
	}
	p := b.board.PieceAt(gm.Square(sq))
	if p == gm.NoPiece {
		return model.None, nil
	}
	piece := model.Piece(p.Type())
	if p.Color() == gm.Black {
		piece = -piece
	}
	return piece, nil
}
