// Package dataset reads perft reference datasets.
//
// A dataset is a text file with one position per line:
//
//	<fen>;D1 <count>;D2 <count>;...
//
// Blank lines and lines starting with '#' are ignored. Files may be zstd compressed.
package dataset

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"chess-test-utils/model"
)

//go:embed data/*.epd
var embedded embed.FS

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Entry is a dataset line: a position and the expected perft counts from depth 1.
type Entry struct {
	FEN    string
	Counts []uint64
}

// Expected returns the expected number of leaves at depth.
// ok is false when the entry has no count for that depth.
func (e Entry) Expected(depth int) (count uint64, ok bool) {
	if depth <= 0 || depth > len(e.Counts) {
		return 0, false
	}
	return e.Counts[depth-1], true
}

// MaxDepth is the deepest depth the entry has a count for.
func (e Entry) MaxDepth() int { return len(e.Counts) }

// Read parses a dataset. zstd compressed input is detected and decompressed.
func Read(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(zstdMagic)); err == nil && bytes.Equal(magic, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return parse(dec)
	}
	return parse(br)
}

// Load reads the dataset file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Standard returns the embedded classic perft positions.
func Standard() []Entry { return mustLoadEmbedded("data/perft.epd") }

// Chess960 returns the embedded Chess960 perft positions.
func Chess960() []Entry { return mustLoadEmbedded("data/perft960.epd") }

func mustLoadEmbedded(name string) []Entry {
	f, err := embedded.Open(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	entries, err := Read(f)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset %s: %v", name, err))
	}
	return entries
}

func parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	parts := strings.Split(line, ";")
	entry := Entry{FEN: strings.TrimSpace(parts[0])}
	if entry.FEN == "" {
		return Entry{}, fmt.Errorf("%w: missing FEN", model.ErrInvalidArgument)
	}
	for i, part := range parts[1:] {
		depth := i + 1
		fields := strings.Fields(part)
		if len(fields) != 2 || fields[0] != "D"+strconv.Itoa(depth) {
			return Entry{}, fmt.Errorf("%w: expected \"D%d <count>\", got %q", model.ErrInvalidArgument, depth, part)
		}
		count, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: invalid count for depth %d: %v", model.ErrInvalidArgument, depth, err)
		}
		entry.Counts = append(entry.Counts, count)
	}
	return entry, nil
}
