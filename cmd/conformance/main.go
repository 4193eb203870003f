// Command conformance runs a perft dataset through one of the reference adapters and reports
// the positions whose leaf count differs from the dataset.
//
// Usage:
//
//	conformance -adapter dragontooth -depth 3
//	conformance -adapter corentings -dataset perft.epd.zst -depth 4 -workers 8
//	conformance -adapter mailbox -variant chess960 -depth 4
//	conformance -config conformance.yaml
//
// The exit code is 1 when a mismatch is found and 2 on errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/corentings/chess/v2"
	"github.com/rs/zerolog"

	"chess-test-utils/adapters/corentings"
	"chess-test-utils/adapters/dragontooth"
	"chess-test-utils/adapters/goose"
	"chess-test-utils/adapters/mailbox"
	"chess-test-utils/dataset"
	"chess-test-utils/model"
	"chess-test-utils/suite"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML configuration file")
	adapterName := flag.String("adapter", "goose", "Move generator: dragontooth, goose, goose-pseudo, corentings or mailbox (the only one playing chess960)")
	variantName := flag.String("variant", "standard", "Variant: standard or chess960")
	datasetPath := flag.String("dataset", "", "Dataset file, plain or zstd compressed (defaults to the embedded dataset of the variant)")
	depth := flag.Int("depth", 0, "Perft depth (defaults to the configured depth of the variant)")
	workers := flag.Int("workers", 0, "Positions searched in parallel (defaults to the configured workers)")
	verbose := flag.Bool("v", false, "Log every position")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	cfg := suite.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = suite.LoadConfig(*configPath); err != nil {
			log.Error().Err(err).Msg("loading configuration")
			os.Exit(2)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Error().Err(err).Msg("reading environment")
		os.Exit(2)
	}

	variant, err := model.ParseVariant(*variantName)
	if err != nil {
		log.Error().Err(err).Msg("invalid -variant")
		os.Exit(2)
	}
	entries, d, err := load(cfg, variant, *datasetPath)
	if err != nil {
		log.Error().Err(err).Msg("loading dataset")
		os.Exit(2)
	}
	if *depth > 0 {
		d = *depth
	}
	if d <= 0 {
		log.Error().Int("depth", d).Msg("depth must be > 0")
		os.Exit(2)
	}
	w := cfg.Workers
	if *workers > 0 {
		w = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = log.WithContext(ctx)

	log.Info().
		Str("adapter", *adapterName).
		Stringer("variant", variant).
		Int("depth", d).
		Int("lines", len(entries)).
		Int("workers", w).
		Msg("running perft dataset")

	start := time.Now()
	var failures []suite.Failure
	switch *adapterName {
	case "dragontooth":
		failures, err = suite.RunDataset[*dragontooth.Board, dragontooth.Move](ctx, dragontooth.Adapter{}, entries, d, variant, w)
	case "goose":
		failures, err = suite.RunDataset[*goose.Board, gm.Move](ctx, goose.Adapter{}, entries, d, variant, w)
	case "goose-pseudo":
		failures, err = suite.RunDataset[*goose.Board, gm.Move](ctx, goose.Adapter{Pseudo: true}, entries, d, variant, w)
	case "corentings":
		failures, err = suite.RunDataset[*corentings.Board, *chess.Move](ctx, corentings.Adapter{}, entries, d, variant, w)
	case "mailbox":
		failures, err = suite.RunDataset[*mailbox.Board, mailbox.Move](ctx, mailbox.Adapter{}, entries, d, variant, w)
	default:
		err = fmt.Errorf("unknown adapter %q", *adapterName)
	}
	stop()
	if err != nil {
		log.Error().Err(err).Msg("perft failed")
		os.Exit(2)
	}

	for _, f := range failures {
		fmt.Println(f)
	}
	log.Info().Int("failures", len(failures)).Dur("elapsed", time.Since(start)).Msg("done")
	if len(failures) > 0 {
		os.Exit(1)
	}
}

// load returns the dataset to run and the configured depth for variant.
func load(cfg suite.Config, variant model.Variant, path string) ([]dataset.Entry, int, error) {
	depth := cfg.PerftDepth
	if path == "" {
		path = cfg.StandardDataset
	}
	if variant == model.Chess960 {
		depth = cfg.Chess960PerftDepth
		if path == "" {
			path = cfg.Chess960Dataset
		}
	}
	if path != "" {
		entries, err := dataset.Load(path)
		return entries, depth, err
	}
	if variant == model.Chess960 {
		return dataset.Chess960(), depth, nil
	}
	return dataset.Standard(), depth, nil
}
