package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"

	"chess-test-utils/bench"
)

var adapters = []string{"dragontooth", "goose", "goose-pseudo", "corentings"}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.Error().Err(err).Str("command", name).Msg("running command")
	return 1
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// One line per adapter and position, one depth deeper than the micro benchmarks.
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, adapter := range adapters {
		for _, pos := range bench.Positions {
			label := adapter + "/" + pos.Name
			if code := run("go", "run", "./cmd/perft", "-adapter", adapter, "-fen", pos.FEN,
				"-depth", strconv.Itoa(pos.Depth+1), "-label", label); code != 0 {
				log.Warn().Str("test", label).Int("exit", code).Msg("perft run failed")
			}
		}
	}
}
