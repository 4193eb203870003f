// Package movecache remembers the moves a board generated at each ply, so that MakeMove can
// check a move against them instead of generating the moves again.
package movecache

import "golang.org/x/exp/slices"

// Cache holds the generated moves indexed by ply, ply 0 being the position the board was built from.
// Entries of plies deeper than the current one are stale and must be dropped with Truncate.
type Cache[M comparable] struct {
	plies [][]M
}

// Store records the moves generated at ply.
func (c *Cache[M]) Store(ply int, moves []M) {
	for len(c.plies) <= ply {
		c.plies = append(c.plies, nil)
	}
	if moves == nil {
		moves = []M{}
	}
	c.plies[ply] = moves
}

// Load returns the moves recorded at ply.
func (c *Cache[M]) Load(ply int) ([]M, bool) {
	if ply < len(c.plies) && c.plies[ply] != nil {
		return c.plies[ply], true
	}
	return nil, false
}

// Truncate keeps the entries of the first n plies.
func (c *Cache[M]) Truncate(n int) {
	if n < len(c.plies) {
		clear(c.plies[n:])
		c.plies = c.plies[:n]
	}
}

// Contains reports whether mv was generated at ply. generate is called, and its result stored,
// when nothing is recorded for ply.
func (c *Cache[M]) Contains(ply int, mv M, generate func() []M) bool {
	moves, ok := c.Load(ply)
	if !ok {
		moves = generate()
		c.Store(ply, moves)
	}
	return slices.Contains(moves, mv)
}
