package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/corentings/chess/v2"
	"github.com/rs/zerolog"

	"chess-test-utils/adapters/corentings"
	"chess-test-utils/adapters/dragontooth"
	"chess-test-utils/adapters/goose"
	"chess-test-utils/adapters/mailbox"
	"chess-test-utils/fen"
	"chess-test-utils/model"
	"chess-test-utils/perft"
)

type options struct {
	fen     string
	variant model.Variant
	depth   int
	repeat  int
	divide  bool
	label   string
}

func main() {
	fenString := flag.String("fen", fen.StartPosition, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	adapterName := flag.String("adapter", "goose", "Move generator: dragontooth, goose, goose-pseudo, corentings or mailbox (the only one playing chess960)")
	variantName := flag.String("variant", "standard", "Variant: standard or chess960")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depth <= 0 {
		log.Error().Msg("-depth must be > 0")
		os.Exit(2)
	}
	variant, err := model.ParseVariant(*variantName)
	if err != nil {
		log.Error().Err(err).Msg("invalid -variant")
		os.Exit(2)
	}
	opts := options{fen: *fenString, variant: variant, depth: *depth, repeat: *repeat, divide: *divide, label: *label}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	switch *adapterName {
	case "dragontooth":
		err = run[*dragontooth.Board, dragontooth.Move](dragontooth.Adapter{}, opts)
	case "goose":
		err = run[*goose.Board, gm.Move](goose.Adapter{}, opts)
	case "goose-pseudo":
		err = run[*goose.Board, gm.Move](goose.Adapter{Pseudo: true}, opts)
	case "corentings":
		err = run[*corentings.Board, *chess.Move](corentings.Adapter{}, opts)
	case "mailbox":
		err = run[*mailbox.Board, mailbox.Move](mailbox.Adapter{}, opts)
	default:
		err = fmt.Errorf("unknown adapter %q", *adapterName)
	}
	if err != nil {
		log.Error().Err(err).Str("adapter", *adapterName).Str("fen", *fenString).Msg("perft failed")
		pprof.StopCPUProfile()
		os.Exit(2)
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Error().Err(err).Msg("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func run[B model.Board[M], M any](adapter model.Adapter[B, M], opts options) error {
	board, err := adapter.FENToBoard(opts.fen, opts.variant)
	if err != nil {
		return err
	}

	if opts.divide {
		res, err := perft.Divide[M](board, opts.depth)
		if err != nil {
			return err
		}
		fmt.Println(res)
		return nil
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < opts.repeat; i++ {
		n, err := perft.Count[M](board, opts.depth)
		if err != nil {
			return err
		}
		totalNodes += n
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", opts.label, opts.depth, totalNodes, elapsed, nps)
	return nil
}
