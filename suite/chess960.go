package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/model"
)

// castling is where the king and the rook of a castling move come from and go to.
type castling struct {
	kingFrom, kingTo, rookFrom, rookTo string
}

func (c castling) reverse() castling {
	return castling{kingFrom: c.kingTo, kingTo: c.kingFrom, rookFrom: c.rookTo, rookTo: c.rookFrom}
}

type chess960Case struct {
	name string
	fen  string
	// move is played with the king captures rook convention (UCI_Chess960).
	move  string
	legal bool
	// illegal is another move that must be rejected in the same position.
	illegal string
	// after is checked once move is played; if undo is set, it is then taken back and checked again.
	after *castling
	undo  bool
}

var chess960Cases = []chess960Case{
	{
		name:  "rookGoesToKingSquare",
		fen:   "qnnbrk1r/ppppp1pp/5p2/3b4/3B4/5P2/PPPPP1PP/QNNBRK1R w KQkq - 2 3",
		move:  "f1h1",
		legal: true,
		after: &castling{"f1", "g1", "h1", "f1"},
		undo:  true,
	},
	{
		name: "rookGoesToKingSquareBlocked",
		fen:  "qnnbrkbr/pppppppp/8/8/8/8/PPPPPPPP/QNNBRKBR w KQkq - 0 1",
		move: "f1h1",
	},
	{
		name:  "queensideRookOnKingside",
		fen:   "qn2rkbr/ppbppppp/1np5/8/8/1NP5/PPBPPPPP/QN2RKBR w KQkq - 2 4",
		move:  "f1e1",
		legal: true,
		after: &castling{"f1", "c1", "e1", "d1"},
		undo:  true,
	},
	{
		name:  "queensideRookOnKingsideTwo",
		fen:   "bbqnr1nQ/1ppppp1p/8/p7/5k2/PP2N3/2PPPP1P/1B2RKNR w KQ - 2 8",
		move:  "f1e1",
		legal: true,
		after: &castling{"f1", "c1", "e1", "d1"},
		undo:  true,
	},
	{
		name:  "queensideRookOnKingsideCastleKingside",
		fen:   "bnqbrk1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/BNQBRK1R w KQkq - 2 2",
		move:  "f1h1",
		legal: true,
		after: &castling{"f1", "g1", "h1", "f1"},
		undo:  true,
	},
	{
		name: "queensideRookOnKingsideBlocked",
		fen:  "nbb1rkrn/pp1ppppp/1qp5/8/8/1QP5/PP1PPPPP/NBB1RKRN w KQkq - 2 3",
		move: "f1e1",
	},
	{
		name:  "kingsideRookOnQueenside",
		fen:   "nbbqr2n/ppp2kr1/3ppppp/8/8/3PPPN1/PPPBBQPP/NRKR4 w KQ - 2 8",
		move:  "c1d1",
		legal: true,
		after: &castling{"c1", "g1", "d1", "f1"},
		undo:  true,
	},
	{
		name: "kingsideRookOnQueensideBlocked",
		fen:  "nbbqr1rn/ppp2k2/3ppppp/8/8/3PPPN1/PPPBB1PP/NRKR2Q1 w KQ - 0 7",
		move: "c1d1",
	},
	{
		name:    "dontGetConfusedBetweenKingsideQueenside",
		fen:     "bqnbrk1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/BQNBRK1R w KQkq - 2 2",
		move:    "f1h1",
		legal:   true,
		illegal: "f1e1",
	},
	{
		// The rook is attacked, but the castling is legal.
		name:  "kingDoesntMoveCastling",
		fen:   "nrk2rnb/pp1ppppp/6b1/q1p5/3P2Q1/1N3N2/1P2PPPP/1RK1BR1B w KQkq - 2 10",
		move:  "c1b1",
		legal: true,
		after: &castling{"c1", "c1", "b1", "d1"},
	},
	{
		name:  "rookDoesntMoveCastling",
		fen:   "nrk1brnb/pp1ppppp/1q6/2p5/3P4/1NBQ1N2/1PP1PPPP/1RK2R1B w KQkq - 2 10",
		move:  "c1f1",
		legal: true,
		after: &castling{"c1", "g1", "f1", "f1"},
	},
	{
		// The king does not move but is no more defended by the rook.
		name: "pinnedRookCastling",
		fen:  "nrk1brnb/pp1ppppp/8/2p5/3P4/1N1Q1N2/1PP1PPPP/qRK1BR1B w KQkq - 2 10",
		move: "c1b1",
	},
	{
		// The standard start position is a Chess960 start position.
		name:  "castlingOnStandardStartPosition",
		fen:   "rnbqk2r/pppp1ppp/3b1n2/4p3/4P3/3B1N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
		move:  "e1h1",
		legal: true,
	},
}

// Chess960 checks castling in Chess960 (https://en.wikipedia.org/wiki/Chess960).
// It requires the adapter to implement model.PieceScanner and to support model.Chess960.
func Chess960[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config) {
	scanner, ok := adapter.(model.PieceScanner[B])
	if !ok {
		t.Skip("adapter does not implement model.PieceScanner")
	}
	requireVariant(t, adapter, model.Chess960)

	c := newCases(cfg)
	for _, tc := range chess960Cases {
		c.run(t, "Chess960Test."+tc.name, func(t *testing.T) {
			board, err := adapter.FENToBoard(tc.fen, model.Chess960)
			require.NoError(t, err)
			pieces := func(square string) model.Piece {
				p, err := scanner.Piece(board, square)
				require.NoError(t, err)
				return p
			}
			if tc.illegal != "" {
				assert.False(t, model.IsLegalUCI[M](board, tc.illegal), "%s should be illegal", tc.illegal)
			}
			if !tc.legal {
				assert.False(t, model.IsLegalUCI[M](board, tc.move), "%s should be illegal", tc.move)
				return
			}
			mv, err := model.ToMove[M](board, tc.move)
			require.NoError(t, err)
			require.True(t, model.IsLegal[M](board, mv), "%s should be legal", tc.move)
			if tc.after == nil {
				return
			}
			require.True(t, board.MakeMove(mv))
			assertKingAndRook(t, pieces, *tc.after, true)
			if tc.undo {
				board.UnmakeMove()
				assertKingAndRook(t, pieces, tc.after.reverse(), true)
			}
		})
	}
}

func assertKingAndRook(t assert.TestingT, pieces func(square string) model.Piece, c castling, white bool) {
	king := pieces(c.kingTo)
	assert.Equal(t, model.King, king.Type(), "no king on %s", c.kingTo)
	assert.Equal(t, white, king.White(), "wrong king color on %s", c.kingTo)
	rook := pieces(c.rookTo)
	assert.Equal(t, model.Rook, rook.Type(), "no rook on %s", c.rookTo)
	assert.Equal(t, white, rook.White(), "wrong rook color on %s", c.rookTo)
	if c.kingFrom != c.kingTo && c.kingFrom != c.rookTo {
		assert.Equal(t, model.None, pieces(c.kingFrom), "%s should be empty", c.kingFrom)
	}
	if c.rookFrom != c.kingTo && c.rookFrom != c.rookTo {
		assert.Equal(t, model.None, pieces(c.rookFrom), "%s should be empty", c.rookFrom)
	}
}
