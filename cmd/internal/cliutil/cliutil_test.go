package cliutil

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/multierr"

	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/testutil"
)

func TestParseGlobalArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		wantArgs []string
		want     GlobalFlags
	}{
		{"empty", nil, "", nil, GlobalFlags{}},
		{"command and files", []string{"check", "a.webidl", "dir"}, "check", []string{"a.webidl", "dir"}, GlobalFlags{}},
		{"verbose before command", []string{"-v", "check", "a.webidl"}, "check", []string{"a.webidl"}, GlobalFlags{Verbose: 1}},
		{"trace after command", []string{"check", "-vv", "a.webidl"}, "check", []string{"a.webidl"}, GlobalFlags{Verbose: 2}},
		{"trace not lowered", []string{"-vv", "-v", "dump"}, "dump", nil, GlobalFlags{Verbose: 2}},
		{"config separate", []string{"-c", "goidl.yaml", "check"}, "check", nil, GlobalFlags{ConfigPath: "goidl.yaml"}},
		{"config joined", []string{"check", "--config=x.yaml"}, "check", nil, GlobalFlags{ConfigPath: "x.yaml"}},
		{"subcommand flags pass through", []string{"check", "-j", "4", "--cache-dir=out"}, "check", []string{"-j", "4", "--cache-dir=out"}, GlobalFlags{}},
		{"help", []string{"dump", "--help"}, "dump", nil, GlobalFlags{HelpFlag: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, cmd, args := ParseGlobalArgs(tt.args)
			testutil.Equal(t, tt.want, flags)
			testutil.Equal(t, tt.wantCmd, cmd)
			testutil.SliceEqual(t, tt.wantArgs, args)
		})
	}
}

func TestPrintErrors(t *testing.T) {
	loc := idl.NewLocation("a.webidl", []byte("interface A {"), 0)
	err := multierr.Combine(
		idl.NewError(idl.KindSyntax, "syntax-error", "invalid syntax at 'x'", loc),
		fmt.Errorf("read b.webidl: %w", errors.New("boom")),
	)

	var buf bytes.Buffer
	testutil.Equal(t, 2, PrintErrors(&buf, err))
	out := buf.String()
	testutil.Contains(t, out, "error: invalid syntax at 'x', a.webidl line 1:0")
	testutil.Contains(t, out, "error: read b.webidl: boom\n")
	testutil.Equal(t, 0, PrintErrors(&buf, nil))
}
