// Package workspace provides the scratch directory a rendering session
// writes temporary files into.
package workspace

import (
	"os"
	"slices"
	"sync"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace is a temporary directory with cleanup hooks.
type Workspace struct {
	dir string

	mu     sync.Mutex
	hooks  []func()
	closed bool

	once       sync.Once
	cleanupErr error
}

// New creates a workspace directory under parent. An empty parent uses the
// system temporary directory.
func New(parent string) (*Workspace, error) {
	dir, err := os.MkdirTemp(parent, domain.AppName+"-")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceCreate, err.Error()), "parent", parent)
	}
	return &Workspace{dir: dir}, nil
}

// BaseDir returns the workspace root.
func (w *Workspace) BaseDir() string {
	return w.dir
}

// CreateFile creates an empty file whose name ends in suffix.
func (w *Workspace) CreateFile(suffix string) (string, error) {
	if err := w.checkOpen(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(w.dir, "*"+suffix)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorkspaceCreate, err.Error()), "suffix", suffix)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorkspaceCreate, err.Error()), "path", name)
	}
	return name, nil
}

// CreateDir creates an empty directory whose name ends in suffix.
func (w *Workspace) CreateDir(suffix string) (string, error) {
	if err := w.checkOpen(); err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp(w.dir, "*"+suffix)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorkspaceCreate, err.Error()), "suffix", suffix)
	}
	return dir, nil
}

// OnCleanup registers fn to run on Cleanup. On a workspace that is already
// cleaned up fn runs immediately.
func (w *Workspace) OnCleanup(fn func()) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		fn()
		return
	}
	w.hooks = append(w.hooks, fn)
	w.mu.Unlock()
}

// Cleanup runs the registered hooks in reverse order and removes the
// directory. Only the first call has an effect.
func (w *Workspace) Cleanup() error {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		hooks := w.hooks
		w.hooks = nil
		w.mu.Unlock()

		for _, fn := range slices.Backward(hooks) {
			fn()
		}

		if err := os.RemoveAll(w.dir); err != nil {
			w.cleanupErr = zerr.With(zerr.Wrap(err, "failed to remove workspace"), "path", w.dir)
		}
	})
	return w.cleanupErr
}

func (w *Workspace) checkOpen() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return zerr.With(zerr.Wrap(domain.ErrWorkspaceClosed, "workspace is no longer usable"), "path", w.dir)
	}
	return nil
}
