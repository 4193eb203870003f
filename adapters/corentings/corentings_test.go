package corentings

import (
	"strings"
	"testing"

	"github.com/corentings/chess/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/fen"
	"chess-test-utils/model"
	"chess-test-utils/perft"
	"chess-test-utils/suite"
)

func TestConformance(t *testing.T) {
	suite.Run[*Board, *chess.Move](t, Adapter{}, suite.DefaultConfig())
}

func TestStartPositionDivide(t *testing.T) {
	b, err := Adapter{}.FENToBoard(fen.StartPosition, model.Standard)
	require.NoError(t, err)
	res, err := perft.Divide[*chess.Move](b, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), res.Leaves())

	sorted := res.Sorted()
	require.Len(t, sorted, 20)
	assert.Equal(t, "a2a3: 20", sorted[0].String())
	assert.Equal(t, "h2h4: 20", sorted[19].String())
}

func TestMakeUnmake(t *testing.T) {
	b, err := Adapter{}.FENToBoard(fen.StartPosition, model.Standard)
	require.NoError(t, err)
	before := b.FEN()

	mv, err := b.ToMove("e2e4")
	require.NoError(t, err)
	require.True(t, b.MakeMove(mv))
	p, err := Adapter{}.Piece(b, "e4")
	require.NoError(t, err)
	assert.Equal(t, model.Pawn, p)

	b.UnmakeMove()
	assert.Equal(t, before, b.FEN())
	assert.Panics(t, b.UnmakeMove)

	_, err = b.ToMove("e2e5")
	assert.ErrorIs(t, err, model.ErrIllegalMove)
	assert.False(t, b.MakeMove(nil))
}

func TestPiece(t *testing.T) {
	b, err := Adapter{}.FENToBoard("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", model.Standard)
	require.NoError(t, err)
	for square, want := range map[string]model.Piece{
		"e1": model.King,
		"e7": -model.Queen,
		"f3": model.Queen,
		"b6": -model.Knight,
		"a6": -model.Bishop,
		"h3": -model.Pawn,
		"a1": model.Rook,
		"c5": model.None,
	} {
		p, err := Adapter{}.Piece(b, square)
		require.NoError(t, err)
		assert.Equal(t, want, p, square)
	}
}

func TestPGN(t *testing.T) {
	const start = "r2qkbnr/ppp2ppp/2npb3/4p3/4P3/2NP1N2/PPP2PPP/R1BQKB1R w KQkq - 0 1"
	b, err := Adapter{}.FENToBoard(start, model.Standard)
	require.NoError(t, err)
	for _, uci := range []string{"f1e2", "g8f6", "e1g1"} {
		mv, err := b.ToMove(uci)
		require.NoError(t, err)
		require.True(t, b.MakeMove(mv))
	}

	pgn, err := Adapter{}.PGN(b)
	require.NoError(t, err)
	content, err := suite.ParsePGN(pgn)
	require.NoError(t, err)

	assert.Equal(t, append(append([]string{}, suite.SevenTagRoster...), "FEN", "SetUp"), content.TagNames())
	value, _ := content.Tag("FEN")
	assert.Equal(t, start, value)
	value, _ = content.Tag("Result")
	assert.Equal(t, "*", value)
	assert.Equal(t, []string{"Be2", "Nf6", "O-O"}, content.Moves)
}

func TestSANRejectsIllegalMove(t *testing.T) {
	b, err := Adapter{}.FENToBoard(fen.StartPosition, model.Standard)
	require.NoError(t, err)
	other, err := Adapter{}.FENToBoard("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", model.Standard)
	require.NoError(t, err)
	castle, err := other.ToMove("e1c1")
	require.NoError(t, err)

	_, err = Adapter{}.SAN(b, castle)
	assert.ErrorIs(t, err, model.ErrIllegalMove)
}

func TestWrap(t *testing.T) {
	movetext := strings.Repeat("12. Nxf6+ Kh6 ", 20) + "1-0"
	pgn := "[Event \"" + strings.Repeat("e", 90) + "\"]\n\n" + movetext
	wrapped := wrap(pgn, 80)

	lines := strings.Split(wrapped, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "[Event \""+strings.Repeat("e", 90)+"\"]", lines[0], "tag pairs are not wrapped")
	assert.Empty(t, lines[1])
	for _, line := range lines[2:] {
		assert.LessOrEqual(t, len(line), 80)
		assert.False(t, strings.HasPrefix(line, " ") || strings.HasSuffix(line, " "), line)
	}
	assert.Equal(t, strings.Fields(movetext), strings.Fields(strings.Join(lines[2:], " ")))
	assert.Equal(t, "short", wrap("short", 80))
}
