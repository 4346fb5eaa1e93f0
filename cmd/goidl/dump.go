package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/kr/pretty"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/goidl"
	"github.com/golangsnmp/goidl/cmd/internal/cliutil"
)

const dumpUsage = `goidl dump - Print finished definitions

Usage:
  goidl dump [options] PATH...

Options:
  -n, --name NAME     Only print the named definition (repeatable)
      --yaml          Print YAML instead of Go syntax
  -o, --output FILE   Write to FILE instead of stdout
  -h, --help          Show help

Examples:
  goidl dump dom/Node.webidl
  goidl dump -n Node -n Element dom/
  goidl dump --yaml dom/ > defs.yaml
`

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	names := fs.StringArrayP("name", "n", nil, "only print the named definition")
	asYAML := fs.Bool("yaml", false, "print YAML instead of Go syntax")
	output := fs.StringP("output", "o", "", "write to FILE instead of stdout")
	help := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, dumpUsage)
		return exitOK
	}
	if fs.NArg() == 0 {
		printError("no input files")
		fmt.Fprint(os.Stderr, dumpUsage)
		return exitError
	}

	p, err := c.parseInputs(fs.Args())
	if err != nil {
		cliutil.PrintErrors(os.Stderr, err)
		return exitError
	}
	defs, err := p.Finish()
	if err != nil {
		cliutil.PrintErrors(os.Stderr, err)
		return exitError
	}

	summary := goidl.Summarize(defs)
	if len(*names) > 0 {
		summary.Definitions = slices.DeleteFunc(summary.Definitions, func(d goidl.DefinitionSummary) bool {
			return !slices.Contains(*names, d.Name)
		})
		if len(summary.Definitions) == 0 {
			printError("no definitions named %v", *names)
			return exitError
		}
	}

	w, closeOut, err := cliutil.GetOutput(*output)
	if err != nil {
		printError("%v", err)
		return exitError
	}
	defer closeOut()

	if *asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			printError("encode: %v", err)
			return exitError
		}
		if err := enc.Close(); err != nil {
			printError("encode: %v", err)
			return exitError
		}
		return exitOK
	}
	if _, err := pretty.Fprintf(w, "%# v\n", summary.Definitions); err != nil {
		printError("%v", err)
		return exitError
	}
	return exitOK
}
