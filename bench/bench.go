// Package bench holds the positions timed by the benchmarks of the reference adapters.
package bench

import "chess-test-utils/fen"

// Position is a benchmarked position with the perft depth it is timed at.
type Position struct {
	Name  string
	FEN   string
	Depth int
}

// Positions are the positions timed by the perft benchmarks.
var Positions = []Position{
	{Name: "Initial", FEN: fen.StartPosition, Depth: 4},
	{Name: "Kiwipete", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Depth: 3},
	{Name: "Pos6", FEN: "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10", Depth: 3},
	{Name: "EnPassant", FEN: "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", Depth: 4},
}
