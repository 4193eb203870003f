package mailbox

import (
	"fmt"

	"chess-test-utils/model"
)

// Adapter builds mailbox boards for both variants.
type Adapter struct{}

var (
	_ model.Adapter[*Board, Move]      = Adapter{}
	_ model.VariantSupporter           = Adapter{}
	_ model.PieceScanner[*Board]       = Adapter{}
	_ model.SANConverter[*Board, Move] = Adapter{}
	_ model.PGNConverter[*Board]       = Adapter{}
)

func (a Adapter) FENToBoard(fen string, variant model.Variant) (*Board, error) {
	if !a.Supports(variant) {
		return nil, fmt.Errorf("%w: unsupported variant %s", model.ErrInvalidArgument, variant)
	}
	return New(fen, variant == model.Chess960)
}

func (Adapter) Supports(variant model.Variant) bool {
	return variant == model.Standard || variant == model.Chess960
}

func (Adapter) Piece(b *Board, square string) (model.Piece, error) {
	sq, err := model.SquareIndex(square)
	if err != nil {
		return model.None, err
	}
	return b.Piece(sq), nil
}

func (Adapter) SAN(b *Board, mv Move) (string, error) { return b.SAN(mv) }

func (Adapter) PGN(b *Board) (string, error) { return b.PGN(), nil }
