package suite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"chess-test-utils/dataset"
	"chess-test-utils/fen"
)

const (
	DefaultPerftDepth         = 2
	DefaultChess960PerftDepth = 2

	EnvPerftDepth         = "PERFT_DEPTH"
	EnvChess960PerftDepth = "PERFT_CHESS960_DEPTH"
	EnvExcludeTags        = "CHESS_TEST_EXCLUDE"
)

// Config tunes the suites.
type Config struct {
	// PerftDepth is the depth of the standard perft suite. 0 disables the suite.
	PerftDepth int `yaml:"perft_depth"`
	// Chess960PerftDepth is the depth of the Chess960 perft suite. 0 disables the suite.
	Chess960PerftDepth int `yaml:"chess960_perft_depth"`
	// ExcludeTags lists the tags of the cases to skip (for instance "SANTest.enPassant").
	ExcludeTags []string `yaml:"exclude_tags"`
	// Workers bounds the number of positions searched in parallel.
	Workers int `yaml:"workers"`

	// StandardDataset and Chess960Dataset replace the embedded perft datasets.
	StandardDataset string `yaml:"standard_dataset"`
	Chess960Dataset string `yaml:"chess960_dataset"`

	// FENComparator checks the FEN tag of exported PGN. Defaults to a strict comparator.
	FENComparator *fen.Comparator `yaml:"fen_comparator"`

	Logger zerolog.Logger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		PerftDepth:         DefaultPerftDepth,
		Chess960PerftDepth: DefaultChess960PerftDepth,
		Workers:            runtime.NumCPU(),
		FENComparator:      fen.NewComparator(),
		Logger:             zerolog.Nop(),
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.FENComparator == nil {
		cfg.FENComparator = fen.NewComparator()
	}
	return cfg, nil
}

// ApplyEnv overrides the configuration with the PERFT_DEPTH, PERFT_CHESS960_DEPTH and
// CHESS_TEST_EXCLUDE (comma separated tags) environment variables.
func (c *Config) ApplyEnv() error {
	if err := envInt(EnvPerftDepth, &c.PerftDepth); err != nil {
		return err
	}
	if err := envInt(EnvChess960PerftDepth, &c.Chess960PerftDepth); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvExcludeTags); ok {
		c.ExcludeTags = append(c.ExcludeTags, strings.Split(v, ",")...)
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("%s should be a non negative integer, got %q", name, v)
	}
	*dst = n
	return nil
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c Config) comparator() *fen.Comparator {
	if c.FENComparator == nil {
		return fen.NewComparator()
	}
	return c.FENComparator
}

func (c Config) standardEntries() ([]dataset.Entry, error) {
	if c.StandardDataset == "" {
		return dataset.Standard(), nil
	}
	return dataset.Load(c.StandardDataset)
}

func (c Config) chess960Entries() ([]dataset.Entry, error) {
	if c.Chess960Dataset == "" {
		return dataset.Chess960(), nil
	}
	return dataset.Load(c.Chess960Dataset)
}
