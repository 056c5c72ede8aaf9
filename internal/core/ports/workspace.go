package ports

// Workspace is a scoped scratch directory that is torn down exactly once.
type Workspace interface {
	// BaseDir returns the root directory of the workspace.
	BaseDir() string

	// CreateFile creates an empty file with the given suffix and returns its path.
	CreateFile(suffix string) (string, error)

	// CreateDir creates a fresh directory with the given suffix and returns its path.
	CreateDir(suffix string) (string, error)

	// OnCleanup registers fn to run when the workspace is torn down.
	// Hooks run in reverse registration order.
	OnCleanup(fn func())
}
