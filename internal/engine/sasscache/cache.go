// Package sasscache memoizes stylesheet compilations by cache key.
package sasscache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Finisher post-processes a freshly compiled artifact before it is stored.
type Finisher func(path string) error

// Deps are the collaborators shared by every cache.
type Deps struct {
	Compiler ports.Compiler
	Logger   ports.Logger
	Tracer   ports.Tracer
	Finish   Finisher
}

// Cache maps keys to compiled artifacts stored under a single root directory.
type Cache struct {
	root  string
	scope domain.CacheScope
	index ports.ArtifactIndex
	deps  Deps

	requestGroup singleflight.Group
}

type result struct {
	path string
	hit  bool
}

// New creates a cache rooted at root, creating the directory if needed.
func New(root string, scope domain.CacheScope, index ports.ArtifactIndex, deps Deps) (*Cache, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirUnavailable.Error()), "root", root)
	}
	return &Cache{
		root:  root,
		scope: scope,
		index: index,
		deps:  deps,
	}, nil
}

// Root returns the storage directory of the cache.
func (c *Cache) Root() string {
	return c.root
}

// Scope reports whether the cache is durable or session scoped.
func (c *Cache) Scope() domain.CacheScope {
	return c.scope
}

// expandedSuffix separates expanded artifacts from compressed ones compiled
// from the same text.
const expandedSuffix = "-expanded"

// slotKey is the index key and artifact name stem for key in one output style.
func slotKey(key string, compressed bool) string {
	if compressed {
		return key
	}
	return key + expandedSuffix
}

// GetOrSet returns the artifact stored under key, compiling input on a miss.
// Compressed and expanded output of one key are stored side by side.
// Concurrent misses for the same key and style share one compilation. A
// caller whose ctx ends stops waiting, but the compilation still completes
// and is stored.
func (c *Cache) GetOrSet(ctx context.Context, input string, loadPaths []string, key string, compressed bool) (string, error) {
	ctx, span := c.deps.Tracer.Start(ctx, "sass.cache.get_or_set")
	defer span.End()
	span.SetAttribute("cache.key", key)
	span.SetAttribute("cache.scope", c.scope.String())
	span.SetAttribute("cache.compressed", compressed)

	slot := slotKey(key, compressed)
	flightCtx := context.WithoutCancel(ctx)
	ch := c.requestGroup.DoChan(slot, func() (any, error) {
		return c.lookupOrCompile(flightCtx, input, loadPaths, slot, compressed)
	})

	select {
	case <-ctx.Done():
		err := ctx.Err()
		span.RecordError(err)
		return "", err
	case res := <-ch:
		if res.Err != nil {
			span.RecordError(res.Err)
			return "", res.Err
		}
		r := res.Val.(result)
		span.SetAttribute("cache.hit", r.hit)
		return r.path, nil
	}
}

func (c *Cache) lookupOrCompile(
	ctx context.Context,
	input string,
	loadPaths []string,
	key string,
	compressed bool,
) (result, error) {
	entry, err := c.index.Get(key)
	if err != nil {
		// An unreadable index only costs a recompile.
		c.deps.Logger.WarnErr(zerr.With(zerr.Wrap(err, "ignoring unreadable cache index"), "root", c.root))
		entry = nil
	}

	if entry != nil {
		path := filepath.Join(c.root, entry.Artifact)
		if _, statErr := os.Stat(path); statErr == nil {
			return result{path: path, hit: true}, nil
		}
		if rmErr := c.index.Remove(key); rmErr != nil {
			c.deps.Logger.WarnErr(zerr.With(zerr.Wrap(rmErr, "failed to drop stale cache entry"), "key", key))
		}
	}

	path, err := c.compile(ctx, input, loadPaths, key, compressed)
	if err != nil {
		return result{}, err
	}
	return result{path: path}, nil
}

func (c *Cache) compile(ctx context.Context, input string, loadPaths []string, key string, compressed bool) (string, error) {
	staged, err := os.CreateTemp(c.root, ".staged-*"+domain.ArtifactSuffix)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactStore.Error()), "root", c.root)
	}
	stagedPath := staged.Name()
	_ = staged.Close()

	// Clean up the staged file on error
	stored := false
	defer func() {
		if !stored {
			_ = os.Remove(stagedPath)
		}
	}()

	out, err := c.deps.Compiler.Compile(ctx, domain.CompileRequest{
		Input:      input,
		LoadPaths:  domain.UniqueStrings(loadPaths),
		OutputPath: stagedPath,
		Compressed: compressed,
	})
	if err != nil {
		return "", err
	}
	if out != stagedPath {
		_ = os.Remove(stagedPath)
		stagedPath = out
	}

	if c.deps.Finish != nil {
		if err := c.deps.Finish(out); err != nil {
			return "", err
		}
	}

	if err := os.Chmod(out, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactStore.Error()), "path", out)
	}

	name := artifactName(key)
	final := filepath.Join(c.root, name)

	// Atomic rename
	if err := os.Rename(out, final); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactStore.Error()), "path", final)
	}
	stored = true

	if err := c.index.Put(domain.CacheEntry{
		Key:        key,
		Artifact:   name,
		Compressed: compressed,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		// The artifact is usable; the next run recompiles it.
		c.deps.Logger.WarnErr(zerr.With(zerr.Wrap(err, "failed to register artifact in cache index"), "artifact", name))
	}

	return final, nil
}

var safeKey = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// artifactName maps a key to a file name inside the cache root.
// Keys that are not plain file names are hashed.
func artifactName(key string) string {
	if safeKey.MatchString(key) && key != "." && key != ".." {
		return key + domain.ArtifactSuffix
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(key)) + domain.ArtifactSuffix
}
