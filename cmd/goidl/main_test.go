package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/goidl"
	"github.com/golangsnmp/goidl/internal/testutil"
)

func writeIDL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	writeIDL(t, dir, "node.webidl", "interface Node {};")
	writeIDL(t, dir, "element.webidl", "interface Element : Node {};")
	cache := filepath.Join(t.TempDir(), "cache")

	testutil.Equal(t, exitOK, run([]string{"check", "-q", "--cache-dir", cache, dir}))
	_, err := os.Stat(filepath.Join(cache, goidl.SummaryFile))
	require.NoError(t, err)

	testutil.Equal(t, exitOK, run([]string{dir}), "bare path runs check")
}

func TestRunCheckFailures(t *testing.T) {
	dir := t.TempDir()
	broken := writeIDL(t, dir, "broken.webidl", "interface A {")
	partial := writeIDL(t, dir, "partial.webidl", "partial interface P {};")
	badRef := writeIDL(t, dir, "ref.webidl", "interface B : Missing {};")

	testutil.Equal(t, exitError, run([]string{"check", "-q", broken}))
	testutil.Equal(t, exitError, run([]string{"check", "-q", badRef}))
	testutil.Equal(t, exitOK, run([]string{"check", "-q", partial}))
	testutil.Equal(t, exitError, run([]string{"check", "-q", "--warnings-as-errors", partial}))
	testutil.Equal(t, exitError, run([]string{"check"}))
	testutil.Equal(t, exitError, run([]string{"check", filepath.Join(dir, "missing.webidl")}))
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	partial := writeIDL(t, dir, "partial.webidl", "partial interface P {};")
	cfg := writeIDL(t, dir, "goidl.yaml", "warnings-as-errors: true\nignore: [partial-*]\n")
	bad := writeIDL(t, dir, "bad.yaml", "jobs: -2\n")

	testutil.Equal(t, exitOK, run([]string{"-c", cfg, "check", "-q", partial}))
	testutil.Equal(t, exitError, run([]string{"--config=" + bad, "check", partial}))
}

func TestRunDumpAndTokens(t *testing.T) {
	dir := t.TempDir()
	src := writeIDL(t, dir, "a.webidl", "interface A { attribute long x; };")
	out := filepath.Join(dir, "out.yaml")

	testutil.Equal(t, exitOK, run([]string{"dump", "--yaml", "-o", out, "-n", "A", src}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	testutil.Contains(t, string(data), "name: A")
	testutil.Equal(t, exitError, run([]string{"dump", "-n", "Nope", src}))

	tokens := filepath.Join(dir, "tokens.txt")
	testutil.Equal(t, exitOK, run([]string{"tokens", "-o", tokens, src}))
	data, err = os.ReadFile(tokens)
	require.NoError(t, err)
	testutil.Contains(t, string(data), "1:0\t")

	bad := writeIDL(t, dir, "bad.webidl", `interface A { const DOMString s = "open`)
	testutil.Equal(t, exitError, run([]string{"tokens", "-o", tokens, bad}))
}

func TestRunUsage(t *testing.T) {
	testutil.Equal(t, exitError, run(nil))
	testutil.Equal(t, exitOK, run([]string{"--help"}))
	testutil.Equal(t, exitOK, run([]string{"version"}))
	testutil.Equal(t, exitError, run([]string{"frobnicate"}))
}
