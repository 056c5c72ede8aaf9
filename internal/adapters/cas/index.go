// Package cas implements the on-disk index of a compilation cache root.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/rogpeppe/go-internal/lockedfile"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactIndex = (*Index)(nil)

// Index implements ports.ArtifactIndex using a flat JSON file guarded by a
// file lock, so several processes can share one cache root.
type Index struct {
	path    string
	version string
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

// NewIndex opens the index stored under root. Entries written by another
// tool version are ignored. A corrupt file opens as an empty index and is
// replaced by the next write.
func NewIndex(root, version string) (*Index, error) {
	idx := &Index{
		path:    domain.IndexPath(filepath.Clean(root)),
		version: version,
		entries: make(map[string]domain.CacheEntry),
	}
	if err := idx.load(); err != nil && !errors.Is(err, domain.ErrIndexUnmarshal) {
		return nil, err
	}
	return idx, nil
}

// Path returns the location of the index file.
func (i *Index) Path() string {
	return i.path
}

func (i *Index) load() error {
	data, err := lockedfile.Read(i.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrIndexRead, err.Error()), "path", i.path)
	}

	entries, err := decode(data, i.path)
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.entries = entries
	i.mu.Unlock()
	return nil
}

// Get returns the entry for key, or nil when the key is unknown or was
// written by a different version. A miss rereads the file once in case
// another process stored the key meanwhile.
func (i *Index) Get(key string) (*domain.CacheEntry, error) {
	if e, ok := i.lookup(key); ok {
		return i.current(e), nil
	}

	if err := i.load(); err != nil {
		return nil, err
	}

	if e, ok := i.lookup(key); ok {
		return i.current(e), nil
	}
	return nil, nil
}

func (i *Index) lookup(key string) (domain.CacheEntry, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	e, ok := i.entries[key]
	return e, ok
}

func (i *Index) current(e domain.CacheEntry) *domain.CacheEntry {
	if e.Version != i.version {
		return nil
	}
	return &e
}

// Put stores the entry stamped with the index version, merging with
// whatever is on disk.
func (i *Index) Put(entry domain.CacheEntry) error {
	entry.Version = i.version
	return i.transform(func(entries map[string]domain.CacheEntry) {
		entries[entry.Key] = entry
	})
}

// Remove deletes the entry for key.
func (i *Index) Remove(key string) error {
	return i.transform(func(entries map[string]domain.CacheEntry) {
		delete(entries, key)
	})
}

func (i *Index) transform(edit func(map[string]domain.CacheEntry)) error {
	var updated map[string]domain.CacheEntry

	err := lockedfile.Transform(i.path, func(old []byte) ([]byte, error) {
		entries, err := decode(old, i.path)
		if err != nil {
			// A corrupt index only holds cache hints. Start over.
			entries = make(map[string]domain.CacheEntry)
		}
		edit(entries)

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrIndexMarshal, err.Error()), "path", i.path)
		}
		updated = entries
		return data, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIndexMarshal) {
			return err
		}
		return zerr.With(zerr.Wrap(domain.ErrIndexWrite, err.Error()), "path", i.path)
	}

	i.mu.Lock()
	i.entries = maps.Clone(updated)
	i.mu.Unlock()
	return nil
}

func decode(data []byte, path string) (map[string]domain.CacheEntry, error) {
	entries := make(map[string]domain.CacheEntry)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrIndexUnmarshal, err.Error()), "path", path)
	}
	return entries, nil
}

// Factory opens one Index per cache root.
type Factory struct {
	version string
}

var _ ports.IndexFactory = (*Factory)(nil)

// NewFactory creates a Factory stamping entries with version.
func NewFactory(version string) *Factory {
	return &Factory{version: version}
}

// Open creates root if needed and loads its index.
func (f *Factory) Open(root string) (ports.ArtifactIndex, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheDirUnavailable, err.Error()), "path", root)
	}
	return NewIndex(root, f.version)
}
