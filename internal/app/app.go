// Package app implements the application layer for sassbundle.
package app

import (
	"context"
	"os"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/sassbundle/internal/engine/bundle"
	"go.trai.ch/sassbundle/internal/engine/cssvars"
	"go.trai.ch/sassbundle/internal/engine/layer"
	"go.trai.ch/sassbundle/internal/engine/postprocess"
	"go.trai.ch/sassbundle/internal/engine/sasscache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App assembles bundles and compiles them through the compilation caches.
type App struct {
	cfg      *domain.Config
	reader   ports.LayerReader
	digester ports.Digester
	registry *sasscache.Registry
	dumper   *postprocess.DebugDumper
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	reader ports.LayerReader,
	digester ports.Digester,
	registry *sasscache.Registry,
	dumper *postprocess.DebugDumper,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		cfg:      cfg,
		reader:   reader,
		digester: digester,
		registry: registry,
		dumper:   dumper,
		logger:   log,
		tracer:   tracer,
	}
}

// ReadLayer loads a single layer file or directory.
func (a *App) ReadLayer(path string) (domain.Layer, error) {
	return a.reader.Read(path)
}

// ReadLayers loads several layers and merges them as one origin.
func (a *App) ReadLayers(paths ...string) (domain.Layer, error) {
	layers, err := a.reader.ReadAll(paths...)
	if err != nil {
		return domain.Layer{}, err
	}
	return layer.Merge(layers...), nil
}

// CompileSass merges bundles and compiles the result, returning the path of
// the compiled stylesheet.
func (a *App) CompileSass(ctx context.Context, bundles []domain.Bundle, ws ports.Workspace, minified bool) (string, error) {
	ctx, span := a.tracer.Start(ctx, "sass.compile",
		ports.WithAttribute("bundles", len(bundles)),
		ports.WithAttribute("minified", minified),
	)
	defer span.End()

	unit := bundle.Assemble(bundles, bundle.Options{Annotate: a.cfg.Annotate})
	input := a.withCustomProperties(unit)

	key := a.cacheKey(input)
	span.SetAttribute("cache.key", key)

	path, err := a.CompileWithCache(ctx, input, unit.LoadPaths, ws, key, minified)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	if a.dumper.Enabled() {
		dumped, dumpErr := a.dumper.Dump(input, path)
		if dumpErr != nil {
			a.logger.WarnErr(zerr.Wrap(dumpErr, "debug dump skipped"))
		} else {
			a.logger.Info("wrote debug dump " + dumped)
		}
	}

	return path, nil
}

// CompileWithCache compiles input through the cache selected for it. An
// empty key compiles without caching.
func (a *App) CompileWithCache(
	ctx context.Context,
	input string,
	loadPaths []string,
	ws ports.Workspace,
	key string,
	compressed bool,
) (string, error) {
	return a.registry.GetOrSet(ctx, input, loadPaths, ws, key, compressed)
}

// Job is one CompileSass request of a batch.
type Job struct {
	Bundles  []domain.Bundle
	Minified bool
}

// CompileAll runs the jobs concurrently, at most Concurrency at a time, and
// returns the artifact paths in job order. The first failure cancels the
// jobs that have not started yet.
func (a *App) CompileAll(ctx context.Context, jobs []Job, ws ports.Workspace) ([]string, error) {
	paths := make([]string, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Concurrency, 1))

	for i, job := range jobs {
		g.Go(func() error {
			path, err := a.CompileSass(ctx, job.Bundles, ws, job.Minified)
			if err != nil {
				return zerr.With(err, "job", i)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// withCustomProperties appends the :root export block when enabled. When
// the block cannot be built the input is saved for inspection and compiled
// without it.
func (a *App) withCustomProperties(unit domain.CompilationUnit) string {
	input := unit.Source
	if !a.cfg.ExportCustomProperties {
		return input
	}

	augmented, err := cssvars.Augment(input, unit.Defaults)
	if err != nil {
		a.logger.WarnErr(zerr.Wrap(err, "compiling without exported custom properties"))
		a.writeRecovery(input)
		return input
	}
	return augmented
}

func (a *App) writeRecovery(input string) {
	if a.cfg.RecoveryFile == "" {
		return
	}
	if err := os.WriteFile(a.cfg.RecoveryFile, []byte(input), domain.FilePerm); err != nil {
		a.logger.WarnErr(zerr.With(zerr.Wrap(err, "failed to save merged input"), "path", a.cfg.RecoveryFile))
		return
	}
	a.logger.Warn("the merged input was saved to " + a.cfg.RecoveryFile)
}

// cacheKey digests the text, or returns "" when caching is disabled.
func (a *App) cacheKey(input string) string {
	if a.cfg.CacheDisabled {
		return ""
	}
	return a.digester.Digest([]byte(input))
}
