// Package corentings plugs github.com/corentings/chess/v2 into the harness.
//
// Besides move generation, the adapter converts moves to SAN and exports games to PGN.
package corentings

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"

	fenutil "chess-test-utils/fen"
	"chess-test-utils/model"
)

// Board is a stack of chess positions with the moves played from the start position.
type Board struct {
	start     string
	positions []*chess.Position
	moves     []*chess.Move
}

var (
	_ model.Board[*chess.Move]      = (*Board)(nil)
	_ model.MoveParser[*chess.Move] = (*Board)(nil)
)

func (b *Board) position() *chess.Position { return b.positions[len(b.positions)-1] }

func (b *Board) Moves() []*chess.Move {
	valid := b.position().ValidMoves()
	moves := make([]*chess.Move, len(valid))
	for i := range valid {
		moves[i] = &valid[i]
	}
	return moves
}

func (b *Board) MovesLegal() bool { return true }

func (b *Board) MakeMove(mv *chess.Move) bool {
	valid, ok := b.find(mv)
	if !ok {
		return false
	}
	b.positions = append(b.positions, b.position().Update(valid))
	b.moves = append(b.moves, valid)
	return true
}

func (b *Board) UnmakeMove() {
	if len(b.moves) == 0 {
		panic("corentings: UnmakeMove without MakeMove")
	}
	b.positions = b.positions[:len(b.positions)-1]
	b.moves = b.moves[:len(b.moves)-1]
}

func (b *Board) ToMove(uci string) (*chess.Move, error) {
	mv, err := chess.UCINotation{}.Decode(b.position(), uci)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrIllegalMove, uci, err)
	}
	valid, ok := b.find(mv)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrIllegalMove, uci)
	}
	return valid, nil
}

// FEN returns the FEN of the current position.
func (b *Board) FEN() string { return b.position().String() }

// find returns the valid move of the current position with the same squares and promotion
// as mv. The returned move carries the tags (castling, en passant, check) computed by the library.
func (b *Board) find(mv *chess.Move) (*chess.Move, bool) {
	if mv == nil {
		return nil, false
	}
	for _, valid := range b.Moves() {
		if valid.S1() == mv.S1() && valid.S2() == mv.S2() && valid.Promo() == mv.Promo() {
			return valid, true
		}
	}
	return nil, false
}

// Adapter builds corentings/chess positions.
type Adapter struct{}

var (
	_ model.Adapter[*Board, *chess.Move]      = Adapter{}
	_ model.PieceScanner[*Board]              = Adapter{}
	_ model.SANConverter[*Board, *chess.Move] = Adapter{}
	_ model.PGNConverter[*Board]              = Adapter{}
)

func (Adapter) FENToBoard(fen string, variant model.Variant) (*Board, error) {
	if variant != model.Standard {
		return nil, fmt.Errorf("%w: corentings/chess does not support %s", model.ErrInvalidArgument, variant)
	}
	game, err := newGame(fen)
	if err != nil {
		return nil, err
	}
	return &Board{start: fen, positions: []*chess.Position{game.Position()}}, nil
}

func (Adapter) Supports(variant model.Variant) bool { return variant == model.Standard }

func (Adapter) Piece(b *Board, square string) (model.Piece, error) {
	sq, err := model.SquareIndex(square)
	if err != nil {
		return model.None, err
	}
	p := b.position().Board().Piece(chess.Square(sq))
	var piece model.Piece
	switch p.Type() {
	case chess.Pawn:
		piece = model.Pawn
	case chess.Knight:
		piece = model.Knight
	case chess.Bishop:
		piece = model.Bishop
	case chess.Rook:
		piece = model.Rook
	case chess.Queen:
		piece = model.Queen
	case chess.King:
		piece = model.King
	default:
		return model.None, nil
	}
	if p.Color() == chess.Black {
		piece = -piece
	}
	return piece, nil
}

func (Adapter) SAN(b *Board, mv *chess.Move) (string, error) {
	valid, ok := b.find(mv)
	if !ok {
		return "", fmt.Errorf("%w: %v", model.ErrIllegalMove, mv)
	}
	return chess.AlgebraicNotation{}.Encode(b.position(), valid), nil
}

// PGN replays the moves of the board from its start position.
// Tags of the seven tag roster are set to their unknown values, except Result.
func (Adapter) PGN(b *Board) (string, error) {
	game, err := newGame(b.start)
	if err != nil {
		return "", err
	}
	for _, mv := range b.moves {
		if err := game.PushNotationMove(mv.String(), chess.UCINotation{}, nil); err != nil {
			return "", fmt.Errorf("%w: %s: %v", model.ErrIllegalMove, mv, err)
		}
	}
	for _, tag := range []struct{ name, value string }{
		{"Event", "?"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", "?"},
		{"White", "?"},
		{"Black", "?"},
		{"Result", game.Outcome().String()},
	} {
		game.AddTagPair(tag.name, tag.value)
	}
	if b.start != fenutil.StartPosition {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", b.start)
	}
	return wrap(game.String(), maxLineLength), nil
}

const maxLineLength = 80

func newGame(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}
	return chess.NewGame(opt), nil
}

// wrap breaks the movetext lines of a PGN so that they are at most width long.
// Tag pair lines are left untouched.
func wrap(pgn string, width int) string {
	lines := strings.Split(pgn, "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if strings.HasPrefix(line, "[") || len(line) <= width {
			sb.WriteString(line)
			continue
		}
		n := 0
		for _, token := range strings.Fields(line) {
			switch {
			case n == 0:
			case n+1+len(token) > width:
				sb.WriteByte('\n')
				n = 0
			default:
				sb.WriteByte(' ')
				n++
			}
			sb.WriteString(token)
			n += len(token)
		}
	}
	return sb.String()
}
