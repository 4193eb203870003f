package bench

import (
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/corentings/chess/v2"
	"github.com/stretchr/testify/require"

	"chess-test-utils/adapters/corentings"
	"chess-test-utils/adapters/dragontooth"
	"chess-test-utils/adapters/goose"
	"chess-test-utils/model"
)

func benchMoves[B model.Board[M], M any](b *testing.B, adapter model.Adapter[B, M]) {
	for _, pos := range Positions {
		b.Run(pos.Name, func(b *testing.B) {
			board, err := adapter.FENToBoard(pos.FEN, model.Standard)
			require.NoError(b, err)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = board.Moves()
			}
		})
	}
}

// benchMakeUnmake plays and takes back every move of the initial position.
func benchMakeUnmake[B model.Board[M], M any](b *testing.B, adapter model.Adapter[B, M]) {
	board, err := adapter.FENToBoard(Positions[0].FEN, model.Standard)
	require.NoError(b, err)
	moves := board.Moves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, mv := range moves {
			if !board.MakeMove(mv) {
				b.Fatalf("illegal move in cached list: %s", model.UCI(mv))
			}
			board.UnmakeMove()
		}
	}
}

func BenchmarkMoves_Dragontooth(b *testing.B) {
	benchMoves[*dragontooth.Board, dragontooth.Move](b, dragontooth.Adapter{})
}

func BenchmarkMoves_Goose(b *testing.B) {
	benchMoves[*goose.Board, gm.Move](b, goose.Adapter{})
}

func BenchmarkMoves_GoosePseudo(b *testing.B) {
	benchMoves[*goose.Board, gm.Move](b, goose.Adapter{Pseudo: true})
}

func BenchmarkMoves_Corentings(b *testing.B) {
	benchMoves[*corentings.Board, *chess.Move](b, corentings.Adapter{})
}

func BenchmarkMakeUnmake_Dragontooth(b *testing.B) {
	benchMakeUnmake[*dragontooth.Board, dragontooth.Move](b, dragontooth.Adapter{})
}

func BenchmarkMakeUnmake_Goose(b *testing.B) {
	benchMakeUnmake[*goose.Board, gm.Move](b, goose.Adapter{})
}

func BenchmarkMakeUnmake_Corentings(b *testing.B) {
	benchMakeUnmake[*corentings.Board, *chess.Move](b, corentings.Adapter{})
}
