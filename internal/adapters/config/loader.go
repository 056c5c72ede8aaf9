// Package config provides the configuration loader for sassbundle.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches upward from cwd for sassbundle.yaml and resolves the
// configuration. Without a file the defaults apply. Environment variables
// override both.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if configPath, ok := findConfiguration(cwd); ok {
		var file Configfile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		l.apply(cfg, &file, filepath.Dir(configPath))
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// apply copies the file values over the defaults. Relative paths are
// resolved against the directory holding the file.
func (l *Loader) apply(cfg *domain.Config, file *Configfile, root string) {
	if file.Cache.Dir != "" {
		cfg.CacheDir = resolvePath(root, file.Cache.Dir)
	}
	cfg.CacheDisabled = file.Cache.Disabled
	if cfg.CacheDisabled && file.Cache.Dir != "" {
		l.Logger.Warn(fmt.Sprintf("'cache.dir' defined in %s has no effect while the cache is disabled", domain.ConfigFileName))
	}

	if file.Compiler.Path != "" {
		cfg.CompilerPath = file.Compiler.Path
	}
	cfg.CompilerArgs = file.Compiler.Args

	if file.Digest != "" {
		cfg.Digest = file.Digest
	}

	if file.Debug.DumpPrefix != "" {
		cfg.DumpPrefix = resolvePath(root, file.Debug.DumpPrefix)
	}
	cfg.Annotate = file.Debug.Annotate

	if file.Export.CustomProperties != nil {
		cfg.ExportCustomProperties = *file.Export.CustomProperties
	}
	if file.Export.RecoveryFile != "" {
		cfg.RecoveryFile = resolvePath(root, file.Export.RecoveryFile)
	}

	cfg.LogJSON = file.Log.JSON

	if file.Concurrency != 0 {
		cfg.Concurrency = file.Concurrency
	}
}

func applyEnv(cfg *domain.Config) {
	if v, ok := os.LookupEnv(domain.EnvCacheDir); ok && v != "" {
		cfg.CacheDir = v
	}
	if v, ok := os.LookupEnv(domain.EnvSaveSCSS); ok && v != "" {
		cfg.DumpPrefix = v
	}
	if v, ok := os.LookupEnv(domain.EnvSassBinary); ok && v != "" {
		cfg.CompilerPath = v
	}
}

func validate(cfg *domain.Config) error {
	switch cfg.Digest {
	case domain.DigestXXHash, domain.DigestBlake3:
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidDigest, domain.ErrConfigInvalid.Error()), "digest", cfg.Digest)
	}

	if cfg.Concurrency < 1 {
		err := zerr.Wrap(domain.ErrConfigInvalid, "concurrency must be at least 1")
		return zerr.With(err, "concurrency", cfg.Concurrency)
	}

	if cfg.CompilerPath == "" {
		return zerr.Wrap(domain.ErrConfigInvalid, "compiler path must not be empty")
	}
	return nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return nil
}
