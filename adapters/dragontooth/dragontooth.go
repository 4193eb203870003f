// Package dragontooth plugs github.com/dylhunn/dragontoothmg into the harness.
//
// dragontoothmg only generates legal moves of standard chess.
package dragontooth

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-test-utils/internal/movecache"
	"chess-test-utils/model"
)

// Move is a dragontoothmg move with a value String method.
type Move dragontoothmg.Move

func (m Move) String() string {
	mv := dragontoothmg.Move(m)
	return mv.String()
}

// Board is a dragontoothmg board with an undo stack.
type Board struct {
	board     dragontoothmg.Board
	undo      []func()
	generated movecache.Cache[Move]
}

var (
	_ model.Board[Move]      = (*Board)(nil)
	_ model.MoveParser[Move] = (*Board)(nil)
)

func (b *Board) Moves() []Move {
	legal := b.board.GenerateLegalMoves()
	moves := make([]Move, len(legal))
	for i, mv := range legal {
		moves[i] = Move(mv)
	}
	b.generated.Store(len(b.undo), moves)
	return moves
}

func (b *Board) MovesLegal() bool { return true }

func (b *Board) MakeMove(mv Move) bool {
	if !b.generates(mv) {
		return false
	}
	b.generated.Truncate(len(b.undo) + 1)
	b.undo = append(b.undo, b.board.Apply(dragontoothmg.Move(mv)))
	return true
}

func (b *Board) UnmakeMove() {
	n := len(b.undo)
	if n == 0 {
		panic("dragontooth: UnmakeMove without MakeMove")
	}
	b.undo[n-1]()
	b.undo = b.undo[:n-1]
	b.generated.Truncate(n)
}

// ToMove parses a UCI move. The move must be legal on the board.
func (b *Board) ToMove(uci string) (Move, error) {
	mv, err := dragontoothmg.ParseMove(uci)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", model.ErrIllegalMove, uci, err)
	}
	if !b.generates(Move(mv)) {
		return 0, fmt.Errorf("%w: %s", model.ErrIllegalMove, uci)
	}
	return Move(mv), nil
}

// FEN returns the FEN of the current position.
func (b *Board) FEN() string { return b.board.ToFen() }

// generates checks mv against the moves of the current position, generating them only when
// Moves was not called since the position was reached.
func (b *Board) generates(mv Move) bool {
	return b.generated.Contains(len(b.undo), mv, b.Moves)
}

// Adapter builds dragontoothmg boards.
type Adapter struct{}

var (
	_ model.Adapter[*Board, Move] = Adapter{}
	_ model.PieceScanner[*Board]  = Adapter{}
)

func (Adapter) FENToBoard(fen string, variant model.Variant) (b *Board, err error) {
	if variant != model.Standard {
		return nil, fmt.Errorf("%w: dragontoothmg does not support %s", model.ErrInvalidArgument, variant)
	}
	// ParseFen panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: invalid FEN %q: %v", model.ErrInvalidArgument, fen, r)
		}
	}()
	return &Board{board: dragontoothmg.ParseFen(fen)}, nil
}

func (Adapter) Supports(variant model.Variant) bool { return variant == model.Standard }

func (Adapter) Piece(b *Board, square string) (model.Piece, error) {
	sq, err := model.SquareIndex(square)
	if err != nil {
		return model.None, err
	}
	if p, ok := pieceAt(uint8(sq), &b.board.White); ok {
		return p, nil
	}
	if p, ok := pieceAt(uint8(sq), &b.board.Black); ok {
		return -p, nil
	}
	return model.None, nil
}

func pieceAt(sq uint8, bitboards *dragontoothmg.Bitboards) (model.Piece, bool) {
	mask := uint64(1) << sq
	switch {
	case bitboards.Pawns&mask != 0:
		return model.Pawn, true
	case bitboards.Knights&mask != 0:
		return model.Knight, true
	case bitboards.Bishops&mask != 0:
		return model.Bishop, true
	case bitboards.Rooks&mask != 0:
		return model.Rook, true
	case bitboards.Queens&mask != 0:
		return model.Queen, true
	case bitboards.Kings&mask != 0:
		return model.King, true
	}
	return model.None, false
}
