package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/model"
)

const chess960Start = "nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w KQkq - 0 1"

func TestOuterRookFile(t *testing.T) {
	tests := []struct {
		rank     string
		kingSide bool
		want     int
	}{
		{"rnbqkbnr", true, 7},
		{"rnbqkbnr", false, 0},
		{"NBBQRKNR", true, 7},
		{"NBBQRKNR", false, 4},
		{"rn2k1r1", true, 6},
		{"2BNK1RR", true, 7},
		{"2BNK1RR", false, -1},
		{"1r2k2r", false, 1},
		{"4k3", true, -1},
		{"r3k3", true, -1},
		{"3rk3", false, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, OuterRookFile(tc.rank, tc.kingSide), "%s kingSide=%v", tc.rank, tc.kingSide)
	}
}

func TestAreCastlingRightsEquivalent(t *testing.T) {
	const placement = "rn2k1r1/ppp1pp1p/3p2p1/5bn1/P7/2N2B2/1PPPPP2/2BNK1RR"
	assert.True(t, AreCastlingRightsEquivalent("Gkq", "Gga", placement))
	assert.True(t, AreCastlingRightsEquivalent("Kkq", "Hga", placement))
	assert.False(t, AreCastlingRightsEquivalent("Kkq", "Gga", placement), "G is not the outermost white rook")
	assert.False(t, AreCastlingRightsEquivalent("Qkq", "Aga", placement), "no white rook on the queen side")
	assert.False(t, AreCastlingRightsEquivalent("Gkq", "Gg", placement))
	assert.False(t, AreCastlingRightsEquivalent("Gkq", "gga", placement), "colors differ")
	assert.False(t, AreCastlingRightsEquivalent("kq", "qk", placement), "wings differ")
	assert.True(t, AreCastlingRightsEquivalent("-", "-", placement))
	assert.False(t, AreCastlingRightsEquivalent("K", "-", placement))
}

func TestStrictComparison(t *testing.T) {
	c := NewComparator()
	relaxed := "nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 0 1"

	equal, err := c.AreEqual(chess960Start, chess960Start)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = c.AreEqual(chess960Start, relaxed)
	require.NoError(t, err)
	assert.False(t, equal)

	// No parsing in strict mode.
	equal, err = c.AreEqual("not a fen", "not a fen")
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestRelaxedCastling(t *testing.T) {
	c := NewComparator().WithStrictCastling(false)

	tests := []struct {
		other string
		want  bool
	}{
		{chess960Start, true},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 0 1", true},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HQhq - 0 1", true},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEh - 0 1", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhd - 0 1", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR b HEhe - 0 1", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe e3 0 1", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 1 1", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 0 2", false},
		{"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKN1 w HEhe - 0 1", false},
	}
	for _, tc := range tests {
		equal, err := c.AreEqual(chess960Start, tc.other)
		require.NoError(t, err)
		assert.Equal(t, tc.want, equal, tc.other)
	}
}

func TestRelaxedMoveNumber(t *testing.T) {
	other := "nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w KQkq - 0 4"
	c := NewComparator()

	equal, err := c.AreEqual(chess960Start, other)
	require.NoError(t, err)
	assert.False(t, equal)

	c.WithStrictCastling(false)
	equal, err = c.AreEqual(chess960Start, other)
	require.NoError(t, err)
	assert.False(t, equal, "move number is strict by default")

	c.WithStrictMoveNumber(false)
	equal, err = c.AreEqual(chess960Start, other)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = c.AreEqual(chess960Start, "nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 0 4")
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestRelaxedRejectsMalformedFEN(t *testing.T) {
	c := NewComparator().WithStrictCastling(false)
	for _, bad := range []string{
		"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w KQkq - 0",
		"nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w KQkq - 0 1 extra",
		"",
	} {
		_, err := c.AreEqual(chess960Start, bad)
		assert.ErrorIs(t, err, model.ErrInvalidArgument, bad)
		_, err = c.AreEqual(bad, chess960Start)
		assert.ErrorIs(t, err, model.ErrInvalidArgument, bad)
	}
}

func TestSelfEquality(t *testing.T) {
	for _, strict := range []bool{true, false} {
		c := NewComparator().WithStrictCastling(strict)
		for _, f := range []string{StartPosition, chess960Start, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1"} {
			equal, err := c.AreEqual(f, f)
			require.NoError(t, err)
			assert.True(t, equal, f)
		}
	}
}
