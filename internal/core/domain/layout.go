package domain

import "path/filepath"

const (
	// AppName names the per-user cache directory.
	AppName = "sassbundle"

	// SassDirName is the directory holding compiled artifacts inside a cache root.
	SassDirName = "sass"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "sassbundle.yaml"

	// IndexFileName is the name of the cache index inside a cache root.
	IndexFileName = "index.json"

	// ArtifactSuffix is the extension of compiled artifacts.
	ArtifactSuffix = ".css"

	// DefaultRecoveryFile receives the merged input when custom-property export fails.
	DefaultRecoveryFile = "_sassbundle_internal_scss_error.scss"

	// DefaultSassBinary is the compiler executable looked up on PATH.
	DefaultSassBinary = "sass"

	// EnvCacheDir overrides the durable cache root.
	EnvCacheDir = "SASSBUNDLE_CACHE_DIR"

	// EnvSaveSCSS enables debug capture with the given file prefix.
	EnvSaveSCSS = "SASSBUNDLE_SAVE_SCSS"

	// EnvSassBinary overrides the compiler executable.
	EnvSassBinary = "SASSBUNDLE_SASS"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

var layerFileNames = [...]string{
	SectionUses:      "_use.scss",
	SectionFunctions: "_functions.scss",
	SectionDefaults:  "_defaults.scss",
	SectionMixins:    "_mixins.scss",
	SectionRules:     "_rules.scss",
}

// LayerFileName returns the file holding a section in directory-form layers.
func LayerFileName(s Section) string {
	return layerFileNames[s]
}

// SessionCachePath returns the session cache root inside a workspace.
func SessionCachePath(workspace string) string {
	return filepath.Join(workspace, SassDirName)
}

// IndexPath returns the index file for a cache root.
func IndexPath(root string) string {
	return filepath.Join(root, IndexFileName)
}
