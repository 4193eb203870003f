package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-test-utils/dataset"
	"chess-test-utils/model"
)

// Perft checks move generation against perft datasets (https://www.chessprogramming.org/Perft_Results).
func Perft[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config) {
	c := newCases(cfg)
	c.run(t, "PerftTest.standardSuite", func(t *testing.T) {
		entries, err := cfg.standardEntries()
		require.NoError(t, err)
		perftSuite[B, M](t, adapter, cfg, entries, cfg.PerftDepth, DefaultPerftDepth, model.Standard)
	})
	c.run(t, "PerftTest.chess960Suite", func(t *testing.T) {
		requireVariant(t, adapter, model.Chess960)
		entries, err := cfg.chess960Entries()
		require.NoError(t, err)
		perftSuite[B, M](t, adapter, cfg, entries, cfg.Chess960PerftDepth, DefaultChess960PerftDepth, model.Chess960)
	})
}

func perftSuite[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config, entries []dataset.Entry, depth, defaultDepth int, variant model.Variant) {
	if depth == 0 {
		t.Skipf("%s perft depth is 0", variant)
	}
	if depth != defaultDepth {
		cfg.Logger.Info().
			Stringer("variant", variant).
			Int("depth", depth).
			Int("lines", len(entries)).
			Msg("perft depth is not the default one")
	}
	ctx := cfg.Logger.WithContext(t.Context())
	failures, err := RunDataset[B, M](ctx, adapter, entries, depth, variant, cfg.workers())
	require.NoError(t, err)
	for _, f := range failures {
		assert.Equal(t, f.Expected, f.Actual, f.String())
	}
}
