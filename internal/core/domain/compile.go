package domain

import "time"

// CompilationUnit is the merged source handed to the compiler.
type CompilationUnit struct {
	// Source is the full stylesheet text in section order.
	Source string
	// LoadPaths is the de-duplicated union of every bundle's load paths.
	LoadPaths []string
	// Defaults is the merged defaults section on its own.
	Defaults string
}

// CompileRequest describes one invocation of the external compiler.
type CompileRequest struct {
	Input      string
	LoadPaths  []string
	OutputPath string
	Compressed bool
}

// CacheScope tells which cache a request is routed to.
type CacheScope uint8

const (
	// ScopeDurable caches survive across runs.
	ScopeDurable CacheScope = iota
	// ScopeSession caches live inside the scratch workspace and are removed with it.
	ScopeSession
)

// String returns the scope name used in logs and span attributes.
func (s CacheScope) String() string {
	if s == ScopeSession {
		return "session"
	}
	return "durable"
}

// CacheEntry is one record in a compilation cache index.
type CacheEntry struct {
	Key        string    `json:"key"`
	Artifact   string    `json:"artifact"`
	Compressed bool      `json:"compressed"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	Version    string    `json:"version"`
}
