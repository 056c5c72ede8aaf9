// Package appdirs resolves the per-user directories the application keeps
// state in between runs.
package appdirs

import (
	"os"
	"path/filepath"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheDirResolver = (*Resolver)(nil)

// Resolver implements ports.CacheDirResolver.
type Resolver struct {
	override     string
	userCacheDir func() (string, error)
}

// NewResolver creates a Resolver. A non-empty override replaces the
// per-user cache root.
func NewResolver(override string) *Resolver {
	return &Resolver{override: override, userCacheDir: os.UserCacheDir}
}

// Root returns the cache root without creating it.
func (r *Resolver) Root() (string, error) {
	if r.override != "" {
		return filepath.Clean(r.override), nil
	}

	base, err := r.userCacheDir()
	if err != nil {
		return "", zerr.Wrap(domain.ErrCacheDirUnavailable, err.Error())
	}
	return filepath.Join(base, domain.AppName), nil
}

// CacheDir returns <root>/<sub>, creating it if needed.
func (r *Resolver) CacheDir(sub string) (string, error) {
	root, err := r.Root()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, sub)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrCacheDirUnavailable, err.Error()), "path", dir)
	}
	return dir, nil
}
