package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassbundle/internal/adapters/config"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{domain.EnvCacheDir, domain.EnvSaveSCSS, domain.EnvSassBinary} {
		t.Setenv(k, "")
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_File(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
version: "1"
cache:
  dir: .cache
compiler:
  path: /opt/dart-sass/sass
  args: ["--quiet-deps"]
digest: blake3
debug:
  dump_prefix: debug/scss
  annotate: true
export:
  custom_properties: false
  recovery_file: /tmp/recovery.scss
log:
  json: true
concurrency: 8
`)

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		CacheDir:               filepath.Join(root, ".cache"),
		CompilerPath:           "/opt/dart-sass/sass",
		CompilerArgs:           []string{"--quiet-deps"},
		Digest:                 domain.DigestBlake3,
		DumpPrefix:             filepath.Join(root, "debug", "scss"),
		Annotate:               true,
		ExportCustomProperties: false,
		RecoveryFile:           "/tmp/recovery.scss",
		LogJSON:                true,
		Concurrency:            8,
	}, cfg)
}

func TestLoader_Load_SearchesUpward(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "digest: blake3\n")

	nested := filepath.Join(root, "docs", "chapters")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, domain.DigestBlake3, cfg.Digest)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "concurrency: 2\n")

	nested := filepath.Join(root, "site")
	require.NoError(t, os.Mkdir(nested, domain.DirPerm))
	createFile(t, nested, domain.ConfigFileName, "concurrency: 6\n")

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Concurrency)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
cache:
  dir: from-file
compiler:
  path: from-file-sass
`)

	t.Setenv(domain.EnvCacheDir, "/var/cache/sass")
	t.Setenv(domain.EnvSaveSCSS, "/tmp/dump")
	t.Setenv(domain.EnvSassBinary, "/usr/local/bin/sass")

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/sass", cfg.CacheDir)
	assert.Equal(t, "/tmp/dump", cfg.DumpPrefix)
	assert.Equal(t, "/usr/local/bin/sass", cfg.CompilerPath)
}

func TestLoader_Load_WarnsOnIgnoredCacheDir(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "cache:\n  dir: x\n  disabled: true\n")

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.True(t, cfg.CacheDisabled)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "cache: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown digest", content: "digest: md5\n", wantErr: domain.ErrInvalidDigest},
		{name: "negative concurrency", content: "concurrency: -1\n", wantErr: domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))

			root := t.TempDir()
			createFile(t, root, domain.ConfigFileName, tt.content)

			_, err := loader.Load(root)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}
	clearEnv(t)
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "digest: xxhash\n")
	require.NoError(t, os.Chmod(filepath.Join(root, domain.ConfigFileName), 0o000))

	_, err := loader.Load(root)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
