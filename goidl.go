// Package goidl parses WebIDL fragments and type-checks the result.
//
// A Parser accumulates the productions of every fragment it is given
// into one global scope. Finish resolves all names, merges implements
// statements and validates the whole set, returning the definitions.
//
//	p := goidl.New(goidl.WithLogger(slog.Default()))
//	if err := p.ParseFile("dom/Node.webidl"); err != nil {
//	    return err
//	}
//	defs, err := p.Finish()
package goidl

import (
	"errors"
	"log/slog"
	"os"
	"runtime"

	"go.uber.org/multierr"

	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/parser"
	"github.com/golangsnmp/goidl/internal/types"
)

// ErrNoSources is returned when ParseFiles or ParseSource is given
// nothing to parse.
var ErrNoSources = errors.New("no WebIDL sources provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, productions, members).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// builtinIDL is parsed into every new Parser.
const builtinIDL = "typedef unsigned long long DOMTimeStamp;"

const builtinFile = "<builtin>"

// Option configures a Parser.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	config      Config
	concurrency int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithConfig sets the warning filter, file extensions and job count.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithConcurrency bounds the number of files ParseFiles reads and
// parses at once. Zero or less falls back to the config, then to
// runtime.NumCPU.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

func (o *options) jobs() int {
	switch {
	case o.concurrency > 0:
		return o.concurrency
	case o.config.Jobs > 0:
		return o.config.Jobs
	}
	return runtime.NumCPU()
}

// Stats counts what a Parser has consumed, excluding the builtin
// fragment.
type Stats struct {
	Files       int
	Bytes       int64
	Productions int
}

// Parser accumulates WebIDL fragments into one global scope. It is not
// safe for concurrent use; ParseFiles parallelizes internally.
type Parser struct {
	raw         []Option
	opts        options
	log         types.Logger
	scope       *idl.Scope
	productions []idl.Production
	warnings    []*idl.Error
	stats       Stats

	// finishErr is the first error idl.Finish returned. Definitions
	// may be left half finished, so it is returned from then on.
	finishErr error
}

// New returns a Parser whose scope already holds the engine typedefs
// and DOMTimeStamp.
func New(opts ...Option) *Parser {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	p := &Parser{
		raw:   opts,
		opts:  o,
		log:   types.Logger{L: o.logger},
		scope: idl.NewGlobalScope(),
	}
	if err := p.Parse(builtinIDL, builtinFile); err != nil {
		panic(err)
	}
	p.stats = Stats{}
	return p
}

// Reset returns a fresh Parser with the same options.
func (p *Parser) Reset() *Parser {
	return New(p.raw...)
}

// Parse parses one fragment and declares its top-level definitions.
// The first syntax error aborts the fragment; nothing from it is
// declared.
func (p *Parser) Parse(text, filename string) error {
	res := parseSource([]byte(text), filename, p.opts.logger)
	return p.commit(res)
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return p.commit(parseSource(data, path, p.opts.logger))
}

// fileResult is the outcome of parsing one fragment, before any of it
// touches the shared scope.
type fileResult struct {
	path        string
	size        int
	productions []idl.Production
	warnings    []*idl.Error
	err         error
}

func parseSource(source []byte, filename string, logger *slog.Logger) fileResult {
	prods, warnings, err := parser.New(source, filename, logger).Parse()
	return fileResult{
		path:        filename,
		size:        len(source),
		productions: prods,
		warnings:    warnings,
		err:         err,
	}
}

// commit declares a parsed fragment in the global scope. Objects whose
// names merge into an existing binding are absorbed by it and do not
// become productions of their own.
func (p *Parser) commit(res fileResult) error {
	p.warnings = append(p.warnings, res.warnings...)
	if res.err != nil {
		return res.err
	}
	p.stats.Files++
	p.stats.Bytes += int64(res.size)

	var errs error
	for _, prod := range res.productions {
		obj, ok := prod.(idl.Object)
		if !ok {
			p.productions = append(p.productions, prod)
			p.stats.Productions++
			continue
		}
		decl, err := p.scope.Add(obj)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if decl.Outcome == idl.Inserted {
			p.productions = append(p.productions, prod)
			p.stats.Productions++
		}
	}
	return errs
}

// Finish resolves and validates everything parsed so far. Calling it
// again returns the same definitions, or the same error if resolution
// or validation failed. When the config treats warnings as errors, any
// reported warning fails the call.
func (p *Parser) Finish() ([]idl.Definition, error) {
	if p.finishErr != nil {
		return nil, p.finishErr
	}
	defs, err := idl.Finish(p.scope, p.productions, p.opts.logger)
	if err != nil {
		p.finishErr = err
		return nil, err
	}
	if p.opts.config.WarningsAsErrors {
		var errs error
		for _, w := range p.Warnings() {
			errs = multierr.Append(errs, w)
		}
		if errs != nil {
			return nil, errs
		}
	}
	p.log.Log(slog.LevelDebug, "finish complete",
		slog.Int("definitions", len(defs)),
		slog.Int("warnings", len(p.warnings)))
	return defs, nil
}

// Warnings returns the warnings collected so far, minus those the
// config ignores.
func (p *Parser) Warnings() []*idl.Error {
	filter := p.opts.config.WarningFilter()
	var out []*idl.Error
	for _, w := range p.warnings {
		if filter.ShouldReport(w.Code) {
			out = append(out, w)
		}
	}
	return out
}

// Stats reports how much input the Parser has consumed.
func (p *Parser) Stats() Stats { return p.stats }

// Scope returns the global scope.
func (p *Parser) Scope() *idl.Scope { return p.scope }
