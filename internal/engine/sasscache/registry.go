package sasscache

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
)

// HasImportDirective reports whether input pulls in other files through @import.
// The digest of such input does not cover the imported files.
func HasImportDirective(input string) bool {
	return strings.Contains(input, "@import")
}

// Registry hands out one Cache per storage root for the lifetime of the process.
type Registry struct {
	resolver ports.CacheDirResolver
	indexes  ports.IndexFactory
	deps     Deps

	mu     sync.Mutex
	caches map[string]*Cache
}

// NewRegistry creates a Registry.
func NewRegistry(resolver ports.CacheDirResolver, indexes ports.IndexFactory, deps Deps) *Registry {
	return &Registry{
		resolver: resolver,
		indexes:  indexes,
		deps:     deps,
		caches:   make(map[string]*Cache),
	}
}

// For selects the cache for input. Input with an import directive goes to a
// session cache inside ws that is removed when ws is cleaned up; anything else
// goes to the durable cache.
func (r *Registry) For(input string, ws ports.Workspace) (*Cache, error) {
	if HasImportDirective(input) {
		root := domain.SessionCachePath(ws.BaseDir())
		cache, created, err := r.open(root, domain.ScopeSession)
		if err != nil {
			return nil, err
		}
		if created {
			ws.OnCleanup(func() {
				r.forget(root)
				_ = os.RemoveAll(root)
			})
		}
		return cache, nil
	}

	root, err := r.resolver.CacheDir(domain.SassDirName)
	if err != nil {
		return nil, err
	}
	cache, _, err := r.open(root, domain.ScopeDurable)
	return cache, err
}

// GetOrSet compiles input through the cache selected by For. An empty key
// skips caching and compiles into a fresh workspace file.
func (r *Registry) GetOrSet(
	ctx context.Context,
	input string,
	loadPaths []string,
	ws ports.Workspace,
	key string,
	compressed bool,
) (string, error) {
	if key == "" {
		return r.compileDirect(ctx, input, loadPaths, ws, compressed)
	}

	cache, err := r.For(input, ws)
	if err != nil {
		return "", err
	}
	return cache.GetOrSet(ctx, input, loadPaths, key, compressed)
}

func (r *Registry) compileDirect(
	ctx context.Context,
	input string,
	loadPaths []string,
	ws ports.Workspace,
	compressed bool,
) (string, error) {
	output, err := ws.CreateFile(domain.ArtifactSuffix)
	if err != nil {
		return "", err
	}

	path, err := r.deps.Compiler.Compile(ctx, domain.CompileRequest{
		Input:      input,
		LoadPaths:  domain.UniqueStrings(loadPaths),
		OutputPath: output,
		Compressed: compressed,
	})
	if err != nil {
		return "", err
	}

	if r.deps.Finish != nil {
		if err := r.deps.Finish(path); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (r *Registry) open(root string, scope domain.CacheScope) (*Cache, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cache, ok := r.caches[root]; ok {
		return cache, false, nil
	}

	index, err := r.indexes.Open(root)
	if err != nil {
		return nil, false, err
	}
	cache, err := New(root, scope, index, r.deps)
	if err != nil {
		return nil, false, err
	}
	r.caches[root] = cache
	return cache, true, nil
}

func (r *Registry) forget(root string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.caches, root)
}
