package suite

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"chess-test-utils/dataset"
	"chess-test-utils/model"
	"chess-test-utils/perft"
)

// Failure is a position whose perft count differs from the dataset.
type Failure struct {
	FEN      string
	Depth    int
	Expected uint64
	Actual   uint64
}

func (f Failure) String() string {
	return fmt.Sprintf("Fen: %s, Depth: %d, Expected: %d, Actual: %d", f.FEN, f.Depth, f.Expected, f.Actual)
}

// RunDataset counts the leaves at depth of every dataset entry and returns the mismatches,
// sorted by FEN. Entries without an expected count at depth are skipped.
//
// Every entry gets its own board; up to workers boards are searched concurrently.
// An adapter error stops the run. The logger attached to ctx, if any, receives one debug
// line per position.
func RunDataset[B model.Board[M], M any](ctx context.Context, adapter model.Adapter[B, M], entries []dataset.Entry, depth int, variant model.Variant, workers int) ([]Failure, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: search depth must be > 0, got %d", model.ErrInvalidArgument, depth)
	}
	log := zerolog.Ctx(ctx)

	var (
		mu       sync.Mutex
		failures []Failure
	)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, entry := range entries {
		expected, ok := entry.Expected(depth)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			board, err := adapter.FENToBoard(entry.FEN, variant)
			if err != nil {
				return fmt.Errorf("fen %s: %w", entry.FEN, err)
			}
			actual, err := perft.Count[M](board, depth)
			if err != nil {
				return fmt.Errorf("fen %s: %w", entry.FEN, err)
			}
			log.Debug().
				Str("fen", entry.FEN).
				Int("depth", depth).
				Uint64("leaves", actual).
				Dur("elapsed", time.Since(start)).
				Msg("perft")
			if actual != expected {
				mu.Lock()
				failures = append(failures, Failure{FEN: entry.FEN, Depth: depth, Expected: expected, Actual: actual})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(failures, func(a, b Failure) int {
		return strings.Compare(a.FEN, b.FEN)
	})
	return failures, nil
}
