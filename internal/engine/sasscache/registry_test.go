package sasscache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports/mocks"
	"go.trai.ch/sassbundle/internal/engine/sasscache"
	"go.uber.org/mock/gomock"
)

func newTestRegistry(t *testing.T, compiler *mocks.MockCompiler) (*sasscache.Registry, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	durable := t.TempDir()
	reg := sasscache.NewRegistry(fakeResolver{root: durable}, &memIndexFactory{}, sasscache.Deps{
		Compiler: compiler,
		Logger:   quietLogger(ctrl),
		Tracer:   &recordingTracer{},
	})
	return reg, durable
}

func TestHasImportDirective(t *testing.T) {
	assert.True(t, sasscache.HasImportDirective("@import 'theme';\na {}"))
	assert.True(t, sasscache.HasImportDirective("a {}\n  @import url(x.css);"))
	assert.False(t, sasscache.HasImportDirective("@use 'sass:math';\na {}"))
}

func TestRegistry_For_Routing(t *testing.T) {
	reg, durable := newTestRegistry(t, mocks.NewMockCompiler(gomock.NewController(t)))
	ws := newFakeWorkspace(t)

	d, err := reg.For("a { color: red; }", ws)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeDurable, d.Scope())
	assert.Equal(t, filepath.Join(durable, "sass"), d.Root())

	s, err := reg.For("@import 'x';", ws)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeSession, s.Scope())
	assert.Equal(t, filepath.Join(ws.BaseDir(), "sass"), s.Root())

	again, err := reg.For("@import 'y';", ws)
	require.NoError(t, err)
	assert.Same(t, s, again)
	assert.Len(t, ws.hooks, 1, "session teardown is registered once")

	d2, err := reg.For("b {}", ws)
	require.NoError(t, err)
	assert.Same(t, d, d2)
}

func TestRegistry_SessionCacheTeardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	reg, _ := newTestRegistry(t, compiler)
	ws := newFakeWorkspace(t)

	compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any()).
		DoAndReturn(writeCSS("x")).
		Times(2)

	input := "@import 'partial';"
	path, err := reg.GetOrSet(testCtx(t), input, nil, ws, "key", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.BaseDir(), "sass", "key-expanded.css"), path)

	again, err := reg.GetOrSet(testCtx(t), input, nil, ws, "key", false)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	ws.cleanup()
	assert.NoDirExists(t, filepath.Join(ws.BaseDir(), "sass"))

	// A new session starts from an empty cache.
	fresh, err := reg.GetOrSet(testCtx(t), input, nil, ws, "key", false)
	require.NoError(t, err)
	assert.FileExists(t, fresh)
}

func TestRegistry_DurableCacheSharedAcrossWorkspaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	reg, durable := newTestRegistry(t, compiler)

	compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any()).
		DoAndReturn(writeCSS("x")).
		Times(1)

	first, err := reg.GetOrSet(testCtx(t), "a {}", nil, newFakeWorkspace(t), "abc", false)
	require.NoError(t, err)

	second, err := reg.GetOrSet(testCtx(t), "a {}", nil, newFakeWorkspace(t), "abc", false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join(durable, "sass", "abc-expanded.css"), first)
}

func TestRegistry_EmptyKeyBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	reg, durable := newTestRegistry(t, compiler)
	ws := newFakeWorkspace(t)

	compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any()).
		DoAndReturn(writeCSS("x")).
		Times(2)

	first, err := reg.GetOrSet(testCtx(t), "a {}", []string{"/p", "/p"}, ws, "", false)
	require.NoError(t, err)
	second, err := reg.GetOrSet(testCtx(t), "a {}", nil, ws, "", false)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, ws.BaseDir(), filepath.Dir(first))
	assert.Equal(t, 2, ws.files)
	assert.NoDirExists(t, filepath.Join(durable, "sass"))
}

func TestRegistry_EmptyKeyCompileError(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	reg, _ := newTestRegistry(t, compiler)

	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return("", domain.ErrCompileFailed)

	_, err := reg.GetOrSet(testCtx(t), "a {}", nil, newFakeWorkspace(t), "", false)
	require.ErrorIs(t, err, domain.ErrCompileFailed)
}
