package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedLayer is returned when a layer source contains no boundary marker.
	ErrMalformedLayer = zerr.New("layer has no section boundary")

	// ErrUnknownSection is returned when a section name is not one of the five known sections.
	ErrUnknownSection = zerr.New("unknown layer section")

	// ErrLayerNotFound is returned when a layer path is neither a file nor a directory.
	ErrLayerNotFound = zerr.New("layer not found")

	// ErrLayerRead is returned when a layer file cannot be read.
	ErrLayerRead = zerr.New("failed to read layer")

	// ErrCompileFailed is returned when the external compiler fails.
	ErrCompileFailed = zerr.New("stylesheet compilation failed")

	// ErrCompilerStart is returned when the external compiler cannot be started.
	ErrCompilerStart = zerr.New("failed to start stylesheet compiler")

	// ErrCustomPropertyExtraction is returned when the custom-property export block cannot be built.
	ErrCustomPropertyExtraction = zerr.New("failed to extract custom properties from defaults")

	// ErrIndexRead is returned when a cache index cannot be read.
	ErrIndexRead = zerr.New("failed to read cache index")

	// ErrIndexWrite is returned when a cache index cannot be written.
	ErrIndexWrite = zerr.New("failed to write cache index")

	// ErrIndexUnmarshal is returned when a cache index cannot be decoded.
	ErrIndexUnmarshal = zerr.New("failed to unmarshal cache index")

	// ErrIndexMarshal is returned when a cache index cannot be encoded.
	ErrIndexMarshal = zerr.New("failed to marshal cache index")

	// ErrArtifactStore is returned when a compiled artifact cannot be moved into the cache.
	ErrArtifactStore = zerr.New("failed to store compiled artifact")

	// ErrWorkspaceClosed is returned when a workspace is used after cleanup.
	ErrWorkspaceClosed = zerr.New("workspace already cleaned up")

	// ErrWorkspaceCreate is returned when scratch files or directories cannot be created.
	ErrWorkspaceCreate = zerr.New("failed to create workspace entry")

	// ErrCacheDirUnavailable is returned when the durable cache root cannot be resolved or created.
	ErrCacheDirUnavailable = zerr.New("cache directory unavailable")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrInvalidDigest is returned when an unknown digest algorithm is requested.
	ErrInvalidDigest = zerr.New("invalid digest algorithm, expected 'xxhash' or 'blake3'")

	// ErrDebugDump is returned when a debug dump file cannot be written.
	ErrDebugDump = zerr.New("failed to write debug dump")

	// ErrPostProcess is returned when a compiled artifact cannot be rewritten.
	ErrPostProcess = zerr.New("failed to post-process compiled artifact")
)
