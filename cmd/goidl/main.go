// Command goidl parses and type-checks WebIDL files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/golangsnmp/goidl"
	"github.com/golangsnmp/goidl/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error, parse failure, or failed validation
)

const usage = `goidl - WebIDL parser and checker

Usage:
  goidl <command> [options] [arguments]

Commands:
  check   Parse and validate WebIDL files (default)
  dump    Print finished definitions
  tokens  Print the token stream of a file
  version Show version

Common options:
  -c, --config FILE  Read settings from a YAML config file
  -v, --verbose      Enable debug logging
  -vv                Enable trace logging (implies -v)
  -h, --help         Show help

Arguments are WebIDL files or directories; directories are searched
recursively for the configured extensions (.webidl, .idl).

Examples:
  goidl check dom/
  goidl check -j 4 --cache-dir .goidl dom/ html/
  goidl dump --yaml dom/Node.webidl
  goidl tokens dom/Node.webidl
`

type cli struct {
	cliutil.GlobalFlags
	config goidl.Config
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var c cli
	var cmd string
	var cmdArgs []string
	c.GlobalFlags, cmd, cmdArgs = cliutil.ParseGlobalArgs(args)

	if c.HelpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}
	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if err := c.loadConfig(); err != nil {
		cliutil.PrintError("config: %v", err)
		return exitError
	}

	switch cmd {
	case "check":
		return c.cmdCheck(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "tokens":
		return c.cmdTokens(cmdArgs)
	default:
		// A bare path means check.
		if _, err := os.Stat(cmd); err == nil {
			return c.cmdCheck(append([]string{cmd}, cmdArgs...))
		}
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) loadConfig() error {
	if c.ConfigPath == "" {
		c.config = goidl.DefaultConfig()
		return nil
	}
	cfg, err := goidl.LoadConfig(c.ConfigPath)
	if err != nil {
		return err
	}
	c.config = cfg
	return nil
}

func (c *cli) setupLogger() *slog.Logger {
	if c.Verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.Verbose >= 2 {
		level = goidl.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// inputFiles expands directory arguments into the WebIDL files under
// them. File arguments are kept as given.
func (c *cli) inputFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		src, err := goidl.DirTree(arg, goidl.WithExtensions(c.config.Extensions...))
		if err != nil {
			return nil, err
		}
		listed, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, listed...)
	}
	if len(files) == 0 {
		return nil, goidl.ErrNoSources
	}
	return files, nil
}

// parseInputs parses every input file into a new Parser. The Parser is
// returned even on failure so that its warnings can be reported.
func (c *cli) parseInputs(args []string, opts ...goidl.Option) (*goidl.Parser, error) {
	files, err := c.inputFiles(args)
	if err != nil {
		return nil, err
	}
	opts = append([]goidl.Option{goidl.WithConfig(c.config)}, opts...)
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, goidl.WithLogger(logger))
	}
	p := goidl.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return p, p.ParseFiles(ctx, files)
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("goidl %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}
