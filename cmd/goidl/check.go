package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"go.uber.org/multierr"

	"github.com/golangsnmp/goidl"
	"github.com/golangsnmp/goidl/cmd/internal/cliutil"
	"github.com/golangsnmp/goidl/idl"
)

const checkUsage = `goidl check - Parse and validate WebIDL files

Usage:
  goidl check [options] PATH...

Options:
  -j, --jobs N              Parse up to N files at once (default: CPU count)
      --cache-dir DIR       Write a definitions.yaml summary to DIR
      --warnings-as-errors  Fail when any warning is reported
  -q, --quiet               Print only diagnostics
  -h, --help                Show help

Examples:
  goidl check dom/
  goidl check --warnings-as-errors dom/Node.webidl dom/Element.webidl
  goidl check -vv dom/Node.webidl        # Trace logging
`

func (c *cli) cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, checkUsage) }

	jobs := fs.IntP("jobs", "j", c.config.Jobs, "parse up to N files at once")
	cacheDir := fs.String("cache-dir", c.config.CacheDir, "write a definitions.yaml summary to DIR")
	strict := fs.Bool("warnings-as-errors", c.config.WarningsAsErrors, "fail when any warning is reported")
	quiet := fs.BoolP("quiet", "q", false, "print only diagnostics")
	help := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, checkUsage)
		return exitOK
	}
	if fs.NArg() == 0 {
		printError("no input files")
		fmt.Fprint(os.Stderr, checkUsage)
		return exitError
	}
	if *jobs < 0 {
		printError("--jobs must not be negative")
		return exitError
	}
	c.config.WarningsAsErrors = *strict

	p, err := c.parseInputs(fs.Args(), goidl.WithConcurrency(*jobs))
	if p == nil {
		printError("%v", err)
		return exitError
	}
	printWarnings(p)
	if err != nil {
		cliutil.PrintErrors(os.Stderr, err)
		return exitError
	}

	defs, err := p.Finish()
	if err != nil {
		if c.config.WarningsAsErrors && onlyWarnings(err) {
			printError("%d warnings treated as errors", len(p.Warnings()))
		} else {
			cliutil.PrintErrors(os.Stderr, err)
		}
		return exitError
	}

	if *cacheDir != "" {
		path, err := goidl.WriteSummary(*cacheDir, defs)
		if err != nil {
			printError("write summary: %v", err)
			return exitError
		}
		if !*quiet {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	if !*quiet {
		stats := p.Stats()
		fmt.Printf("Checked %d files (%s), %d definitions, %d warnings\n",
			stats.Files, humanize.Bytes(uint64(stats.Bytes)), len(defs), len(p.Warnings()))
	}
	return exitOK
}

func printWarnings(p *goidl.Parser) {
	for _, w := range p.Warnings() {
		fmt.Fprintln(os.Stderr, w.Error())
	}
}

// onlyWarnings reports whether every error combined in err is a
// warning promoted by --warnings-as-errors.
func onlyWarnings(err error) bool {
	for _, e := range multierr.Errors(err) {
		var diag *idl.Error
		if !errors.As(e, &diag) || !diag.IsWarning() {
			return false
		}
	}
	return true
}
