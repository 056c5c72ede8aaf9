package ports

import "go.trai.ch/sassbundle/internal/core/domain"

// ArtifactIndex records which compiled artifact belongs to which cache key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactIndex interface {
	// Get returns the entry for key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.CacheEntry, error)

	// Put stores an entry, replacing any entry with the same key.
	Put(entry domain.CacheEntry) error

	// Remove deletes the entry for key. Removing a missing key is not an error.
	Remove(key string) error
}

// IndexFactory opens the index that lives in a cache root.
type IndexFactory interface {
	Open(root string) (ArtifactIndex, error)
}
