package suite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/fen"
	"chess-test-utils/model"
)

// MaxLineLength is the longest PGN line allowed (PGN standard, section 4.3).
const MaxLineLength = 80

// SevenTagRoster are the mandatory PGN tags, in their mandatory order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

const (
	whiteWon = "1-0"
	blackWon = "0-1"
	draw     = "1/2-1/2"
	playing  = "*"
)

// fatalAttraction is Lasker vs Thomas, London 1912.
var fatalAttraction = strings.Fields(`d2d4 e7e6 g1f3 f7f5 b1c3 g8f6 c1g5 f8e7 g5f6 e7f6 e2e4
	f5e4 c3e4 b7b6 f3e5 e8g8 f1d3 c8b7 d1h5 d8e7 h5h7 g8h7 e4f6 h7h6 e5g4 h6g5 h2h4 g5f4 g2g3 f4f3 d3e2
	f3g2 h1h2 g2g1 e1d2`)

const fatalAttractionSAN = "d4 e6 Nf3 f5 Nc3 Nf6 Bg5 Be7 Bxf6 Bxf6 e4 fxe4 Nxe4 b6 Ne5 O-O Bd3 Bb7 Qh5 Qe7 " +
	"Qxh7+ Kxh7 Nxf6+ Kh6 Neg4+ Kg5 h4+ Kf4 g3+ Kf3 Be2+ Kg2 Rh2+ Kg1 Kd2#"

// PGN checks the PGN export (https://en.wikipedia.org/wiki/Portable_Game_Notation).
// It requires the adapter to implement model.PGNConverter.
func PGN[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config) {
	converter, ok := adapter.(model.PGNConverter[B])
	if !ok {
		t.Skip("adapter does not implement model.PGNConverter")
	}
	comparator := cfg.comparator()
	export := func(t *testing.T, fenString string, variant model.Variant, moves ...string) Content {
		board, err := adapter.FENToBoard(fenString, variant)
		require.NoError(t, err)
		for _, uci := range moves {
			mv, err := model.ToMove[M](board, uci)
			require.NoError(t, err)
			require.True(t, board.MakeMove(mv), "%s can't be played", uci)
		}
		pgn, err := converter.PGN(board)
		require.NoError(t, err)
		assertLineLength(t, pgn)
		content, err := ParsePGN(pgn)
		require.NoError(t, err, pgn)
		return content
	}

	c := newCases(cfg)
	c.run(t, "PGNTest.basic", func(t *testing.T) {
		content := export(t, fen.StartPosition, model.Standard, fatalAttraction...)
		assertMandatoryTags(t, comparator, content, model.Standard, "", whiteWon)
		assert.Len(t, content.Tags, len(SevenTagRoster), "unexpected extra tags %v", content.TagNames())
		assert.Equal(t, fatalAttractionSAN, strings.Join(content.Moves, " "))
	})
	c.run(t, "PGNTest.nonStandardStart", func(t *testing.T) {
		const start = "r2qkbnr/ppp2ppp/2npb3/4p3/4P3/2NP1N2/PPP2PPP/R1BQKB1R w KQkq - 0 1"
		content := export(t, start, model.Standard, "f1e2")
		assertMandatoryTags(t, comparator, content, model.Standard, start, playing)
	})
	c.run(t, "PGNTest.draw", func(t *testing.T) {
		const start = "1k6/8/K1Q5/8/8/8/8/8 b - - 0 1"
		content := export(t, start, model.Standard)
		assertMandatoryTags(t, comparator, content, model.Standard, start, draw)
	})
	c.run(t, "PGNTest.chess960", func(t *testing.T) {
		requireVariant(t, adapter, model.Chess960)
		const start = "2r1k3/pp2pppp/2q5/8/1P6/8/4P3/3KR3 b q - 0 1"
		content := export(t, start, model.Chess960, "e8c8")
		assertMandatoryTags(t, comparator, content, model.Chess960, start, blackWon)
	}, "Chess960")
}

func assertLineLength(t assert.TestingT, pgn string) {
	for _, line := range strings.Split(pgn, "\n") {
		assert.LessOrEqual(t, len(line), MaxLineLength, "line too long: %s", line)
	}
}

// assertMandatoryTags checks the seven tag roster, the Variant tag and the FEN tag.
// expectedFEN is empty for a game starting from the standard start position.
func assertMandatoryTags(t assert.TestingT, comparator *fen.Comparator, content Content, variant model.Variant, expectedFEN, expectedResult string) {
	names := content.TagNames()
	if assert.GreaterOrEqual(t, len(names), len(SevenTagRoster), "missing tags in %v", names) {
		assert.Equal(t, SevenTagRoster, names[:len(SevenTagRoster)], "PGN does not start with the seven tag roster")
	}
	result, _ := content.Tag("Result")
	assert.Equal(t, expectedResult, result, "Result tag value is wrong")

	variantTag, ok := content.Tag("Variant")
	if variant == model.Chess960 {
		assert.True(t, ok && variantTag != "", "missing Variant tag")
	} else {
		assert.False(t, ok, "should not have Variant tag")
	}

	actualFEN, ok := content.Tag("FEN")
	if expectedFEN == "" {
		assert.False(t, ok, "should not have FEN tag")
		return
	}
	if !assert.True(t, ok, "missing FEN tag") {
		return
	}
	equal, err := comparator.AreEqual(expectedFEN, actualFEN)
	if assert.NoError(t, err) {
		assert.True(t, equal, "FEN tag value is wrong: expected %s, got %s", expectedFEN, actualFEN)
	}
}
