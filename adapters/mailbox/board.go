package mailbox

import (
	"fmt"
	"strings"

	"chess-test-utils/fen"
	"chess-test-utils/internal/movecache"
	"chess-test-utils/model"
)

// Move is a move of a Board. For castling, to is the destination of the king and rook the
// square of the castling rook.
type Move struct {
	from, to, rook int8
	promotion      model.Piece
	chess960       bool
}

func (m Move) castling() bool { return m.rook != noSquare }

// String returns the UCI text of the move. Chess960 castling is written king takes rook.
func (m Move) String() string {
	to := m.to
	if m.castling() && m.chess960 {
		to = m.rook
	}
	uci := squareName(m.from) + squareName(to)
	if m.promotion != model.None {
		uci += strings.ToLower(m.promotion.String())
	}
	return uci
}

// Board is a position with the moves played since it was built.
type Board struct {
	pos       position
	chess960  bool
	history   []position
	moves     []Move
	generated movecache.Cache[Move]
}

var _ model.Board[Move] = (*Board)(nil)

// New builds a board from a FEN string. Castling rights may be given as KQkq or as rook
// file letters.
func New(fenString string, chess960 bool) (*Board, error) {
	pos, err := parseFEN(fenString)
	if err != nil {
		return nil, err
	}
	return &Board{pos: pos, chess960: chess960}, nil
}

func (b *Board) Moves() []Move {
	moves := b.pos.legalMoves(b.chess960)
	b.generated.Store(len(b.history), moves)
	return moves
}

func (b *Board) MovesLegal() bool { return true }

func (b *Board) MakeMove(mv Move) bool {
	if !b.generated.Contains(len(b.history), mv, b.Moves) {
		return false
	}
	b.generated.Truncate(len(b.history) + 1)
	b.history = append(b.history, b.pos)
	b.moves = append(b.moves, mv)
	b.pos = b.pos.play(mv)
	return true
}

func (b *Board) UnmakeMove() {
	n := len(b.history)
	if n == 0 {
		panic("mailbox: UnmakeMove without MakeMove")
	}
	b.pos = b.history[n-1]
	b.history = b.history[:n-1]
	b.moves = b.moves[:n-1]
	b.generated.Truncate(n)
}

// FEN returns the FEN of the current position.
func (b *Board) FEN() string { return b.pos.fen() }

// Piece returns the piece on sq, a1 being 0.
func (b *Board) Piece(sq int) model.Piece { return b.pos.squares[sq] }

// SAN returns the Standard Algebraic Notation of mv in the current position.
func (b *Board) SAN(mv Move) (string, error) {
	if !b.generated.Contains(len(b.history), mv, b.Moves) {
		return "", fmt.Errorf("%w: %s", model.ErrIllegalMove, mv)
	}
	return b.pos.san(mv, b.chess960), nil
}

// PGN exports the game from the position the board was built from. Tags of the seven tag
// roster other than Result hold their unknown value.
func (b *Board) PGN() string {
	start := b.pos
	if len(b.history) > 0 {
		start = b.history[0]
	}
	result := b.pos.result(b.chess960)

	var sb strings.Builder
	tag := func(name, value string) { fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, value) }
	tag("Event", "?")
	tag("Site", "?")
	tag("Date", "????.??.??")
	tag("Round", "?")
	tag("White", "?")
	tag("Black", "?")
	tag("Result", result)
	if b.chess960 {
		tag("Variant", "Chess960")
	}
	if startFEN := start.fen(); b.chess960 || startFEN != fen.StartPosition {
		tag("SetUp", "1")
		tag("FEN", startFEN)
	}
	sb.WriteByte('\n')

	tokens := make([]string, 0, 2*len(b.moves)+1)
	pos := start
	for i, mv := range b.moves {
		switch {
		case pos.side == white:
			tokens = append(tokens, fmt.Sprintf("%d.", pos.moveNr))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", pos.moveNr))
		}
		tokens = append(tokens, pos.san(mv, b.chess960))
		pos = pos.play(mv)
	}
	tokens = append(tokens, result)
	writeMovetext(&sb, tokens, pgnLineLength)
	return sb.String()
}

const pgnLineLength = 80

func writeMovetext(sb *strings.Builder, tokens []string, width int) {
	n := 0
	for _, token := range tokens {
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
	sb.WriteByte('\n')
}
