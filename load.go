package goidl

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ParseFiles reads and parses the files at paths in parallel, then
// declares their definitions in input order so the outcome does not
// depend on scheduling. A file that fails to read or parse contributes
// nothing; its error is combined with the others and the remaining
// files are still declared.
func (p *Parser) ParseFiles(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return ErrNoSources
	}
	return p.parseAll(ctx, paths, os.ReadFile)
}

// ParseSource parses every file src lists.
func (p *Parser) ParseSource(ctx context.Context, src Source) error {
	if src == nil {
		return ErrNoSources
	}
	files, err := src.ListFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoSources
	}
	return p.parseAll(ctx, files, src.ReadFile)
}

func (p *Parser) parseAll(ctx context.Context, paths []string, read func(string) ([]byte, error)) error {
	jobs := p.opts.jobs()
	p.log.Log(slog.LevelInfo, "parallel parsing",
		slog.Int("files", len(paths)),
		slog.Int("jobs", jobs))

	results := make([]fileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := read(path)
			if err != nil {
				results[i] = fileResult{path: path, err: err}
				return nil
			}
			results[i] = parseSource(data, path, p.opts.logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs error
	for _, res := range results {
		if err := p.commit(res); err != nil {
			p.log.Log(slog.LevelDebug, "file failed",
				slog.String("file", res.path),
				slog.String("error", err.Error()))
			errs = multierr.Append(errs, err)
		}
	}

	p.log.Log(slog.LevelInfo, "parallel parsing complete",
		slog.Int("files", p.stats.Files),
		slog.Int("productions", p.stats.Productions),
		slog.Int64("bytes", p.stats.Bytes))
	return errs
}
