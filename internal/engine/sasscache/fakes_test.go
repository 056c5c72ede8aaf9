package sasscache_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/sassbundle/internal/core/ports/mocks"
	"go.trai.ch/sassbundle/internal/engine/sasscache"
	"go.uber.org/mock/gomock"
)

type memIndex struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
}

func newMemIndex() *memIndex {
	return &memIndex{entries: make(map[string]domain.CacheEntry)}
}

func (m *memIndex) Get(key string) (*domain.CacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memIndex) Put(entry domain.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.Key] = entry
	return nil
}

func (m *memIndex) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memIndex) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

type memIndexFactory struct {
	mu      sync.Mutex
	indexes map[string]*memIndex
}

func (f *memIndexFactory) Open(root string) (ports.ArtifactIndex, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexes == nil {
		f.indexes = make(map[string]*memIndex)
	}
	idx, ok := f.indexes[root]
	if !ok {
		idx = newMemIndex()
		f.indexes[root] = idx
	}
	return idx, nil
}

type fakeWorkspace struct {
	dir   string
	hooks []func()
	files int
}

func newFakeWorkspace(t *testing.T) *fakeWorkspace {
	t.Helper()
	return &fakeWorkspace{dir: t.TempDir()}
}

func (w *fakeWorkspace) BaseDir() string { return w.dir }

func (w *fakeWorkspace) CreateFile(suffix string) (string, error) {
	f, err := os.CreateTemp(w.dir, "scratch-*"+suffix)
	if err != nil {
		return "", err
	}
	w.files++
	return f.Name(), f.Close()
}

func (w *fakeWorkspace) CreateDir(suffix string) (string, error) {
	return os.MkdirTemp(w.dir, "scratch-*"+suffix)
}

func (w *fakeWorkspace) OnCleanup(fn func()) { w.hooks = append(w.hooks, fn) }

func (w *fakeWorkspace) cleanup() {
	hooks := slices.Clone(w.hooks)
	slices.Reverse(hooks)
	for _, fn := range hooks {
		fn()
	}
	w.hooks = nil
}

type fakeResolver struct{ root string }

func (r fakeResolver) CacheDir(sub string) (string, error) {
	dir := filepath.Join(r.root, sub)
	return dir, os.MkdirAll(dir, domain.DirPerm)
}

type recordedSpan struct {
	name  string
	attrs map[string]any
	err   error
}

type recordingTracer struct {
	mu    sync.Mutex
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := &recordedSpan{name: name, attrs: make(map[string]any)}
	t.spans = append(t.spans, s)
	return ctx, &recordingSpan{tracer: t, span: s}
}

func (t *recordingTracer) last() recordedSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.spans[len(t.spans)-1]
}

type recordingSpan struct {
	tracer *recordingTracer
	span   *recordedSpan
}

func (s *recordingSpan) End() {}

func (s *recordingSpan) RecordError(err error) {
	s.tracer.mu.Lock()
	defer s.tracer.mu.Unlock()
	s.span.err = err
}

func (s *recordingSpan) SetAttribute(key string, value any) {
	s.tracer.mu.Lock()
	defer s.tracer.mu.Unlock()
	s.span.attrs[key] = value
}

// writeCSS is a compiler stand-in that writes css to the requested output.
func writeCSS(css string) func(context.Context, domain.CompileRequest) (string, error) {
	return func(_ context.Context, req domain.CompileRequest) (string, error) {
		return req.OutputPath, os.WriteFile(req.OutputPath, []byte(css), domain.PrivateFilePerm)
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().WarnErr(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func newTestCache(t *testing.T, compiler ports.Compiler, tracer ports.Tracer) (*sasscache.Cache, *memIndex) {
	t.Helper()
	ctrl := gomock.NewController(t)
	idx := newMemIndex()
	cache, err := sasscache.New(filepath.Join(t.TempDir(), "sass"), domain.ScopeDurable, idx, sasscache.Deps{
		Compiler: compiler,
		Logger:   quietLogger(ctrl),
		Tracer:   tracer,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	return cache, idx
}

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// testCtx bounds a GetOrSet call so a compile that never returns fails the
// test instead of hanging it.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), waitFor)
	t.Cleanup(cancel)
	return ctx
}
