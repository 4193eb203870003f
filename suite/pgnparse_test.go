package suite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/fen"
	"chess-test-utils/model"
)

const samplePGN = `[Event "?"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "Edward Lasker"]
[Black "George Alan Thomas"]
[Result "*"]
[FEN "r2qkbnr/ppp2ppp/2npb3/4p3/4P3/2NP1N2/PPP2PPP/R1BQKB1R w KQkq - 0 1"]
[SetUp "1"]

1. Be2 Nf6 2. O-O
Be7 *
`

func TestParsePGN(t *testing.T) {
	content, err := ParsePGN(samplePGN)
	require.NoError(t, err)
	assert.Equal(t, []string{"Event", "Site", "Date", "Round", "White", "Black", "Result", "FEN", "SetUp"}, content.TagNames())
	white, ok := content.Tag("White")
	assert.True(t, ok)
	assert.Equal(t, "Edward Lasker", white)
	_, ok = content.Tag("Variant")
	assert.False(t, ok)
	assert.Equal(t, []string{"Be2", "Nf6", "O-O", "Be7"}, content.Moves)
}

func TestParsePGNBlackStarts(t *testing.T) {
	content, err := ParsePGN("[Result \"1/2-1/2\"]\r\n\r\n1... Kc8 2. Qe8# 1/2-1/2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kc8", "Qe8#"}, content.Moves)
}

func TestParsePGNErrors(t *testing.T) {
	for name, pgn := range map[string]string{
		"no separator":      "[Event \"?\"]\n1. e4 *",
		"two separators":    "[Event \"?\"]\n\n\n1. e4 *",
		"tag after moves":   "[Event \"?\"]\n\n1. e4 *\n[Site \"?\"]",
		"tag without value": "[Event]\n\n*",
		"unquoted value":    "[Event ?]\n\n*",
		"empty tag":         "[]\n\n*",
	} {
		_, err := ParsePGN(pgn)
		assert.ErrorIs(t, err, model.ErrInvalidArgument, name)
	}
}

func TestAssertMandatoryTags(t *testing.T) {
	content, err := ParsePGN(samplePGN)
	require.NoError(t, err)
	start := "r2qkbnr/ppp2ppp/2npb3/4p3/4P3/2NP1N2/PPP2PPP/R1BQKB1R w KQkq - 0 1"

	r := &recorder{}
	assertMandatoryTags(r, fen.NewComparator(), content, model.Standard, start, playing)
	assert.Empty(t, r.errors)

	r = &recorder{}
	assertMandatoryTags(r, fen.NewComparator(), content, model.Standard, "", whiteWon)
	assert.Len(t, r.errors, 2, "wrong result and unexpected FEN tag")

	r = &recorder{}
	assertMandatoryTags(r, fen.NewComparator(), content, model.Chess960, start, playing)
	assert.Len(t, r.errors, 1, "missing Variant tag")

	relaxed := strings.Replace(start, "KQkq - 0 1", "KQkq - 0 7", 1)
	r = &recorder{}
	assertMandatoryTags(r, fen.NewComparator(), content, model.Standard, relaxed, playing)
	assert.Len(t, r.errors, 1)
	r = &recorder{}
	assertMandatoryTags(r, fen.NewComparator().WithStrictCastling(false).WithStrictMoveNumber(false), content, model.Standard, relaxed, playing)
	assert.Empty(t, r.errors)

	unordered, err := ParsePGN("[Site \"?\"]\n[Event \"?\"]\n[Date \"?\"]\n[Round \"?\"]\n[White \"?\"]\n[Black \"?\"]\n[Result \"*\"]\n\n*")
	require.NoError(t, err)
	r = &recorder{}
	assertMandatoryTags(r, fen.NewComparator(), unordered, model.Standard, "", playing)
	assert.Len(t, r.errors, 1, "seven tag roster out of order")
}

func TestAssertLineLength(t *testing.T) {
	r := &recorder{}
	assertLineLength(r, strings.Repeat("x", MaxLineLength)+"\n"+strings.Repeat("y", MaxLineLength+1))
	assert.Len(t, r.errors, 1)
}
