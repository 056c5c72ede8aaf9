package ports

// CacheDirResolver resolves the durable, cross-run cache directory.
type CacheDirResolver interface {
	// CacheDir returns (and creates) the named subdirectory of the cache root.
	CacheDir(sub string) (string, error)
}
