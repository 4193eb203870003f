package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/model"
)

type sanCheck struct {
	fen string
	uci string
	san string
}

type sanCase struct {
	name    string
	variant model.Variant
	checks  []sanCheck
}

var sanCases = []sanCase{
	{name: "pawnCatch", checks: []sanCheck{
		{"rnbqkbnr/pppp1ppp/8/4p3/3P3P/8/PPP1PPP1/RNBQKBNR b KQkq d3 0 2", "e5d4", "exd4"},
	}},
	{name: "queenCatchWithCheck", checks: []sanCheck{
		{"r1b1k2r/ppp2ppp/5n2/7P/Pq1n4/6P1/1P1Q1P2/1R2KBNR b Kkq - 1 13", "b4d2", "Qxd2+"},
	}},
	{name: "checkMate", checks: []sanCheck{
		{"r5k1/pp3ppp/2p2n2/P5PP/KP3P2/2r5/8/1bq5 b - - 0 28", "c1a3", "Qa3#"},
	}},
	{name: "kingSideCastle", checks: []sanCheck{
		{"r3k2r/pppnqppp/3b1n2/5b2/8/4P3/PPP2PPP/RNBQKBNR b KQkq - 3 6", "e8g8", "O-O"},
	}},
	{name: "queenSideCastle", checks: []sanCheck{
		{"r3k2r/pppnqppp/3b1n2/5b2/8/4P3/PPP2PPP/RNBQKBNR b KQkq - 3 6", "e8c8", "O-O-O"},
	}},
	{name: "enPassant", checks: []sanCheck{
		{"rnbqkbnr/p1pppppp/8/PpP5/8/8/1P1PPPPP/RNBQKBNR w KQkq b6 0 1", "a5b6", "axb6"},
	}},
	{name: "promotion", checks: []sanCheck{
		{"2k1r3/Ppp1pP2/3p4/8/2P5/1P3K2/2PP2P1/R1B1Q3 w - - 0 1", "f7f8b", "f8=B"},
	}},
	{name: "promotionWithCaptureAndCheckMate", checks: []sanCheck{
		{"2k1r3/Ppp1pP2/3p4/8/2P5/1P3K2/2PP2P1/R1B1Q3 w - - 0 1", "f7e8q", "fxe8=Q#"},
	}},
	{name: "promotionWithCaptureAndStaleMate", checks: []sanCheck{
		{"4r3/2k1pP2/2p1P3/P1p1P3/2P5/5K2/2PP2P1/RQB5 w - - 0 1", "f7e8q", "fxe8=Q"},
	}},
	{name: "draw", checks: []sanCheck{
		{"4k3/8/8/8/8/8/r5q1/4K3 b - - 0 1", "a2d2", "Rd2"},
	}},
	{name: "verticalRooksAmbiguity", checks: []sanCheck{
		{"2kr3r/pppppppp/8/R7/2P1Q2Q/1P3K2/2PP2PP/RNB4Q w - - 0 1", "a1a3", "R1a3"},
	}},
	{name: "horizontalRooksAmbiguity", checks: []sanCheck{
		{"2kr3r/pppppppp/8/R7/2P1Q3/1P3K2/2PP2PP/RNB1Q2Q b - - 0 1", "d8f8", "Rdf8"},
	}},
	{name: "threeQueensAmbiguity", checks: []sanCheck{
		{"2kr3r/pppppppp/8/R7/2P1Q2Q/1P3K2/2PP2PP/RNB4Q w - - 0 1", "h4e1", "Qh4e1"},
	}},
	{name: "chess960Castling", variant: model.Chess960, checks: []sanCheck{
		{"nrk1brnb/pp1ppppp/1q6/2p5/3P4/1NBQ1N2/1PP1PPPP/1RK2R1B w KQkq - 2 10", "c1b1", "O-O-O"},
		{"nrk1bbnr/pp1ppppp/1q6/2p5/3P4/1NBQ1NB1/1PP1PPPP/1RK4R w KQkq - 2 10", "c1h1", "O-O"},
	}},
}

// SAN checks the conversion of moves to Standard Algebraic Notation, as written in PGN
// (https://en.wikipedia.org/wiki/Algebraic_notation_(chess)).
// It requires the adapter to implement model.SANConverter.
func SAN[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config) {
	converter, ok := adapter.(model.SANConverter[B, M])
	if !ok {
		t.Skip("adapter does not implement model.SANConverter")
	}

	c := newCases(cfg)
	for _, tc := range sanCases {
		var extra []string
		if tc.variant == model.Chess960 {
			extra = append(extra, "Chess960")
		}
		c.run(t, "SANTest."+tc.name, func(t *testing.T) {
			requireVariant(t, adapter, tc.variant)
			for _, check := range tc.checks {
				board, err := adapter.FENToBoard(check.fen, tc.variant)
				require.NoError(t, err)
				mv, err := model.ToMove[M](board, check.uci)
				require.NoError(t, err)
				san, err := converter.SAN(board, mv)
				require.NoError(t, err)
				assert.Equal(t, check.san, san, "%s on %s", check.uci, check.fen)
			}
		}, extra...)
	}
}
