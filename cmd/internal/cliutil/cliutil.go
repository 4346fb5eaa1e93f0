// Package cliutil provides shared CLI utilities for the goidl command.
package cliutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/golangsnmp/goidl/idl"
)

// GlobalFlags holds the flags accepted before or after the subcommand.
type GlobalFlags struct {
	Verbose    int
	ConfigPath string
	HelpFlag   bool
}

// ParseGlobalArgs parses global flags and extracts the subcommand from
// args. Flags handled: -v/--verbose, -vv, -c/--config, -h/--help.
// Unrecognized flags are passed through to the subcommand.
func ParseGlobalArgs(args []string) (flags GlobalFlags, cmd string, cmdArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags.HelpFlag = true
		case arg == "-v" || arg == "--verbose":
			if flags.Verbose < 1 {
				flags.Verbose = 1
			}
		case arg == "-vv":
			flags.Verbose = 2
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				i++
				flags.ConfigPath = args[i]
			}
		case strings.HasPrefix(arg, "--config="):
			flags.ConfigPath = arg[len("--config="):]
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}
	return
}

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (*os.File, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// PrintErrors writes every error combined in err to w, one per line.
// WebIDL diagnostics already carry their severity and location; other
// errors get an "error: " prefix. It returns the number written.
func PrintErrors(w io.Writer, err error) int {
	errs := multierr.Errors(err)
	for _, e := range errs {
		var diag *idl.Error
		if errors.As(e, &diag) {
			fmt.Fprintln(w, diag.Error())
			continue
		}
		fmt.Fprintf(w, "error: %v\n", e)
	}
	return len(errs)
}
