// Package integration provides integration tests against the WebIDL test corpus.
//
// These tests parse the whole testdata/corpus/ tree once and make
// assertions against the finished definitions.
//
// # File Organization
//
//   - corpus_test.go: Shared infrastructure and basic load test
//   - interfaces_test.go: Inheritance, implements and extended attributes
//   - members_test.go: Attribute, constant and dictionary member types
//   - overloads_test.go: Overload sets and distinguishing indexes
package integration

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/goidl"
	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/testutil"
	"github.com/golangsnmp/goidl/internal/types"
)

// corpus holds the shared finished parser for all tests.
// Loaded once via loadCorpus().
var (
	corpusParser *goidl.Parser
	corpusDefs   []idl.Definition
	corpusOnce   sync.Once
	corpusErr    error
)

func corpusPath() string {
	return filepath.Join("..", "testdata", "corpus")
}

// loadCorpus parses and finishes the corpus once. All tests share the
// result.
func loadCorpus(t *testing.T) (*goidl.Parser, []idl.Definition) {
	t.Helper()

	corpusOnce.Do(func() {
		path := corpusPath()
		if _, err := os.Stat(path); err != nil {
			corpusErr = err
			return
		}
		src, err := goidl.DirTree(path)
		if err != nil {
			corpusErr = err
			return
		}
		p := goidl.New()
		if err := p.ParseSource(context.Background(), src); err != nil {
			corpusErr = err
			return
		}
		corpusDefs, corpusErr = p.Finish()
		corpusParser = p
	})

	if corpusErr != nil {
		t.Fatalf("failed to load corpus: %v", corpusErr)
	}
	return corpusParser, corpusDefs
}

func lookup[T idl.Object](t *testing.T, name string) T {
	t.Helper()
	p, _ := loadCorpus(t)
	obj, err := p.Scope().Lookup(name)
	require.NoError(t, err)
	v, ok := obj.(T)
	require.True(t, ok, "%s is %T", name, obj)
	return v
}

func member(t *testing.T, iface, name string) idl.Member {
	t.Helper()
	for _, m := range lookup[*idl.Interface](t, iface).Members() {
		if m.Name() == name {
			return m
		}
	}
	t.Fatalf("%s has no member %s", iface, name)
	return nil
}

func TestCorpusLoads(t *testing.T) {
	p, defs := loadCorpus(t)

	want := []string{
		"DOMTimeStamp",
		"DocumentReadyState", "Document",
		"Element", "HTMLCollection",
		"Event", "EventInit", "EventHandlerNonNull", "EventHandler",
		"EventListener", "EventTarget",
		"Node", "NodeList",
		"CanvasGradient", "CanvasPattern", "CanvasTransformation", "CanvasRenderingContext2D", "ImageData",
		"HTMLElement", "HTMLCanvasElement",
	}
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name()
	}
	testutil.SliceEqual(t, want, names)

	stats := p.Stats()
	testutil.Equal(t, 7, stats.Files)
	testutil.True(t, stats.Bytes > 0)

	warnings := p.Warnings()
	require.Len(t, warnings, 1)
	testutil.Equal(t, types.DiagPartialInterfaceIgnored, warnings[0].Code)
	testutil.Contains(t, warnings[0].Locations[0].File(), "Document.webidl")
}

func TestCorpusDependencyOrder(t *testing.T) {
	_, defs := loadCorpus(t)
	ordered, cycles := idl.DependencyOrder(defs)
	testutil.Len(t, cycles, 0)

	position := make(map[string]int, len(ordered))
	for i, d := range ordered {
		position[d.Name()] = i
	}
	before := [][2]string{
		{"EventTarget", "Node"},
		{"Node", "Element"},
		{"Node", "Document"},
		{"Element", "HTMLElement"},
		{"HTMLElement", "HTMLCanvasElement"},
		{"CanvasTransformation", "CanvasRenderingContext2D"},
	}
	for _, pair := range before {
		testutil.True(t, position[pair[0]] < position[pair[1]], "%s should precede %s", pair[0], pair[1])
	}
}
