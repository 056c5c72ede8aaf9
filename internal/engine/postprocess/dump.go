package postprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/engine/cssvars"
	"go.trai.ch/zerr"
)

// DebugDumper writes the merged input of each compilation to a numbered file
// annotated with the custom properties found in the compiled output.
type DebugDumper struct {
	prefix  string
	counter *atomic.Uint64
}

// NewDebugDumper creates a dumper writing <prefix>-<n>.scss files.
// An empty prefix disables dumping. counter is shared by every dumper of a session.
func NewDebugDumper(prefix string, counter *atomic.Uint64) *DebugDumper {
	if counter == nil {
		counter = new(atomic.Uint64)
	}
	return &DebugDumper{prefix: prefix, counter: counter}
}

// Enabled reports whether a prefix is configured.
func (d *DebugDumper) Enabled() bool {
	return d != nil && d.prefix != ""
}

// Dump writes input and the css-vars annotation derived from the artifact at
// artifactPath. It returns the written file path.
func (d *DebugDumper) Dump(input, artifactPath string) (string, error) {
	if !d.Enabled() {
		return "", nil
	}

	//nolint:gosec // artifactPath is a compiled artifact owned by the cache
	css, err := os.ReadFile(artifactPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDebugDump.Error()), "artifact", artifactPath)
	}

	n := d.counter.Add(1)
	path := fmt.Sprintf("%s-%d.scss", d.prefix, n)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrDebugDump.Error()), "path", path)
		}
	}

	content := input + "\n" + domain.CSSVarsAnnotation(cssvars.Extract(string(css))) + "\n"
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDebugDump.Error()), "path", path)
	}
	return path, nil
}
