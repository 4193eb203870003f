// Package suite holds conformance test suites for chess libraries plugged into the harness
// through a model.Adapter.
//
// A library's own tests call the suites:
//
//	func TestConformance(t *testing.T) {
//		suite.Run[*mylib.Board, mylib.Move](t, mylib.Adapter{}, suite.DefaultConfig())
//	}
//
// Every case is tagged "<Suite>.<case>" (for instance "SANTest.enPassant") and can be skipped
// through Config.ExcludeTags. Suites requiring an optional capability (model.SANConverter,
// model.PGNConverter, model.PieceScanner) or a variant the adapter does not support are skipped.
package suite

import (
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"

	"chess-test-utils/model"
)

// Run runs all the suites.
func Run[B model.Board[M], M any](t *testing.T, adapter model.Adapter[B, M], cfg Config) {
	t.Run("PerftTest", func(t *testing.T) { Perft[B, M](t, adapter, cfg) })
	t.Run("Chess960Test", func(t *testing.T) { Chess960[B, M](t, adapter, cfg) })
	t.Run("SANTest", func(t *testing.T) { SAN[B, M](t, adapter, cfg) })
	t.Run("PGNTest", func(t *testing.T) { PGN[B, M](t, adapter, cfg) })
}

type cases struct {
	excluded mapset.Set[string]
}

func newCases(cfg Config) cases {
	excluded := mapset.NewSet[string]()
	for _, tag := range cfg.ExcludeTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			excluded.Add(tag)
		}
	}
	return cases{excluded: excluded}
}

// skipped returns the first excluded tag, if any.
func (c cases) skipped(tags ...string) (string, bool) {
	for _, tag := range tags {
		if c.excluded.Contains(tag) {
			return tag, true
		}
	}
	return "", false
}

// run runs f as a subtest named after tag. extra are additional tags of the case.
func (c cases) run(t *testing.T, tag string, f func(t *testing.T), extra ...string) {
	t.Run(tag, func(t *testing.T) {
		if excluded, ok := c.skipped(append([]string{tag}, extra...)...); ok {
			t.Skipf("%s has tag %q which is on the exclude list %v, test will be skipped", tag, excluded, c.excluded.ToSlice())
		}
		f(t)
	})
}

func requireVariant(t *testing.T, adapter any, variant model.Variant) {
	t.Helper()
	if !model.Supports(adapter, variant) {
		t.Skipf("adapter does not support %s", variant)
	}
}
