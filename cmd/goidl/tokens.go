package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/golangsnmp/goidl/cmd/internal/cliutil"
	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/lexer"
	"github.com/golangsnmp/goidl/internal/types"
)

const tokensUsage = `goidl tokens - Print the token stream of a file

Usage:
  goidl tokens [options] FILE

Options:
  -o, --output FILE   Write to FILE instead of stdout
  -h, --help          Show help

Each line is LINE:COL KIND TEXT. Lexical errors are printed to stderr.
`

func (c *cli) cmdTokens(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, tokensUsage) }

	output := fs.StringP("output", "o", "", "write to FILE instead of stdout")
	help := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, tokensUsage)
		return exitOK
	}
	if fs.NArg() != 1 {
		printError("expected exactly one file")
		fmt.Fprint(os.Stderr, tokensUsage)
		return exitError
	}

	path := fs.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		printError("%v", err)
		return exitError
	}

	w, closeOut, err := cliutil.GetOutput(*output)
	if err != nil {
		printError("%v", err)
		return exitError
	}
	defer closeOut()

	tokens, diags := lexer.New(source, types.Component(c.setupLogger(), "lexer")).Tokenize()
	for _, tok := range tokens {
		loc := idl.NewLocation(path, source, int(tok.Span.Start))
		fmt.Fprintf(w, "%d:%d\t%s\t%s\n", loc.Line(), loc.Column(), tok.Kind,
			source[tok.Span.Start:tok.Span.End])
	}
	for _, d := range diags {
		loc := idl.NewLocation(path, source, int(d.Span.Start))
		diag := idl.NewError(idl.KindLexical, d.Code, d.Message, loc)
		fmt.Fprintln(os.Stderr, diag.Error())
	}
	if len(diags) > 0 {
		return exitError
	}
	return exitOK
}
