package domain

// Digest algorithm names accepted in configuration.
const (
	DigestXXHash = "xxhash"
	DigestBlake3 = "blake3"
)

// Config is the resolved runtime configuration.
type Config struct {
	// CacheDir overrides the durable cache root. Empty means the per-user cache directory.
	CacheDir string
	// CacheDisabled compiles every request directly without consulting any cache.
	CacheDisabled bool

	// CompilerPath is the external compiler executable.
	CompilerPath string
	// CompilerArgs are appended to every compiler invocation.
	CompilerArgs []string

	// Digest selects the cache-key digest algorithm.
	Digest string

	// DumpPrefix enables numbered debug dumps of the merged input when non-empty.
	DumpPrefix string
	// Annotate inserts origin annotations between merged contributors.
	Annotate bool

	// ExportCustomProperties appends a :root block mirroring the merged defaults.
	ExportCustomProperties bool
	// RecoveryFile receives the unaugmented input when the export block cannot be built.
	RecoveryFile string

	// LogJSON switches the logger to JSON output.
	LogJSON bool

	// Concurrency bounds the number of compilations run at once by CompileAll.
	Concurrency int
}

// DefaultConfig returns the configuration used when no file or override is present.
func DefaultConfig() *Config {
	return &Config{
		CompilerPath:           DefaultSassBinary,
		Digest:                 DigestXXHash,
		ExportCustomProperties: true,
		RecoveryFile:           DefaultRecoveryFile,
		Concurrency:            4,
	}
}
