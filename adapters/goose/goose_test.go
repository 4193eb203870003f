package goose

import (
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/fen"
	"chess-test-utils/model"
	"chess-test-utils/perft"
	"chess-test-utils/suite"
)

func TestConformance(t *testing.T) {
	cfg := suite.DefaultConfig()
	if !testing.Short() {
		cfg.PerftDepth = 3
	}
	t.Run("legal", func(t *testing.T) {
		suite.Run[*Board, gm.Move](t, Adapter{}, cfg)
	})
	t.Run("pseudo", func(t *testing.T) {
		suite.Run[*Board, gm.Move](t, Adapter{Pseudo: true}, cfg)
	})
}

func TestLegalAndPseudoDivideAgree(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	legal, err := Adapter{}.FENToBoard(kiwipete, model.Standard)
	require.NoError(t, err)
	pseudo, err := Adapter{Pseudo: true}.FENToBoard(kiwipete, model.Standard)
	require.NoError(t, err)

	want, err := perft.Divide[gm.Move](legal, 2)
	require.NoError(t, err)
	got, err := perft.Divide[gm.Move](pseudo, 2)
	require.NoError(t, err)

	assert.Equal(t, uint64(2039), want.Leaves())
	assert.Equal(t, want.String(), got.String())
	assert.Equal(t, legal.FEN(), pseudo.FEN())
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want bool
	}{
		{"through check", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1g1", false},
		{"other side", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1c1", true},
		{"out of check", "4k3/8/8/8/8/8/8/R3K2r w Q - 0 1", "e1c1", false},
		{"free path", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", true},
		{"into check", "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", false},
	}
	for _, tc := range tests {
		for _, a := range []Adapter{{}, {Pseudo: true}} {
			b, err := a.FENToBoard(tc.fen, model.Standard)
			require.NoError(t, err)
			before := b.FEN()
			assert.Equal(t, tc.want, model.IsLegalUCI[gm.Move](b, tc.uci), "%s pseudo=%v", tc.name, a.Pseudo)
			assert.Equal(t, before, b.FEN())
		}
	}
}

func TestPseudoRejectsMoveIgnoringCheck(t *testing.T) {
	// The h2 pawn is not on a ray of the king in check.
	const position = "4k3/8/8/8/8/8/7P/r3K3 w - - 0 1"
	b, err := Adapter{Pseudo: true}.FENToBoard(position, model.Standard)
	require.NoError(t, err)
	before := b.FEN()
	mv, err := model.ToMove[gm.Move](b, "h2h3")
	require.NoError(t, err, "h2h3 is pseudo legal")
	assert.False(t, b.MakeMove(mv))
	assert.Equal(t, before, b.FEN())

	legal, err := Adapter{}.FENToBoard(position, model.Standard)
	require.NoError(t, err)
	_, err = model.ToMove[gm.Move](legal, "h2h3")
	assert.ErrorIs(t, err, model.ErrIllegalMove)
}

func TestFENToBoardErrors(t *testing.T) {
	_, err := Adapter{}.FENToBoard("8/8/8 w - - 0 1", model.Standard)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = Adapter{}.FENToBoard("nbbqrknr/pppppppp/8/8/8/8/PPPPPPPP/NBBQRKNR w HEhe - 0 1", model.Chess960)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestPiece(t *testing.T) {
	b, err := Adapter{}.FENToBoard(fen.StartPosition, model.Standard)
	require.NoError(t, err)
	mv, err := model.ToMove[gm.Move](b, "g1f3")
	require.NoError(t, err)
	require.True(t, b.MakeMove(mv))

	for square, want := range map[string]model.Piece{
		"f3": model.Knight,
		"g1": model.None,
		"e8": -model.King,
		"d1": model.Queen,
		"a7": -model.Pawn,
	} {
		p, err := Adapter{}.Piece(b, square)
		require.NoError(t, err)
		assert.Equal(t, want, p, square)
	}
	b.UnmakeMove()
	p, err := Adapter{}.Piece(b, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.Knight, p)
}

func TestMakeMoveAfterUnmake(t *testing.T) {
	for _, a := range []Adapter{{}, {Pseudo: true}} {
		b, err := a.FENToBoard(fen.StartPosition, model.Standard)
		require.NoError(t, err)
		start := b.FEN()
		require.Len(t, b.Moves(), 20)

		e4, err := model.ToMove[gm.Move](b, "e2e4")
		require.NoError(t, err)
		require.True(t, b.MakeMove(e4))
		e5, err := model.ToMove[gm.Move](b, "e7e5")
		require.NoError(t, err)
		require.True(t, b.MakeMove(e5))
		b.UnmakeMove()
		b.UnmakeMove()

		assert.False(t, b.MakeMove(e5), "pseudo=%v: e7e5 was generated for black", a.Pseudo)
		d4, err := model.ToMove[gm.Move](b, "d2d4")
		require.NoError(t, err)
		require.True(t, b.MakeMove(d4))
		assert.False(t, b.MakeMove(d4), "pseudo=%v: d2d4 was generated before it was played", a.Pseudo)
		b.UnmakeMove()
		assert.Equal(t, start, b.FEN())
	}
}
