// Package fs reads layers from the filesystem and derives cache keys.
package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/sassbundle/internal/engine/layer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.LayerReader = (*LayerReader)(nil)

// LayerReader loads layers from single marked files or from directories
// holding one file per section.
type LayerReader struct {
	fs afero.Fs
}

// NewLayerReader creates a LayerReader over the OS filesystem.
func NewLayerReader() *LayerReader {
	return NewLayerReaderFs(afero.NewOsFs())
}

// NewLayerReaderFs creates a LayerReader over fsys.
func NewLayerReaderFs(fsys afero.Fs) *LayerReader {
	return &LayerReader{fs: fsys}
}

// Read loads the layer at path.
func (r *LayerReader) Read(path string) (domain.Layer, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.Layer{}, zerr.With(zerr.Wrap(domain.ErrLayerNotFound, err.Error()), "path", path)
		}
		return domain.Layer{}, zerr.With(zerr.Wrap(domain.ErrLayerRead, err.Error()), "path", path)
	}

	switch {
	case info.Mode().IsRegular():
		return r.readFile(path)
	case info.IsDir():
		return r.readDir(path)
	default:
		return domain.Layer{}, zerr.With(zerr.Wrap(domain.ErrLayerNotFound, "not a file or directory"), "path", path)
	}
}

// ReadAll loads every path concurrently and returns the layers in input order.
func (r *LayerReader) ReadAll(paths ...string) ([]domain.Layer, error) {
	layers := make([]domain.Layer, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			l, err := r.Read(path)
			if err != nil {
				return err
			}
			layers[i] = l
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// ReadMerged loads every path and merges them as layers of one origin.
func (r *LayerReader) ReadMerged(paths ...string) (domain.Layer, error) {
	layers, err := r.ReadAll(paths...)
	if err != nil {
		return domain.Layer{}, err
	}
	return layer.Merge(layers...), nil
}

func (r *LayerReader) readFile(path string) (domain.Layer, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return domain.Layer{}, zerr.With(zerr.Wrap(domain.ErrLayerRead, err.Error()), "path", path)
	}
	return layer.Parse(string(data), path)
}

// readDir takes each section file verbatim. Missing files leave the section empty.
func (r *LayerReader) readDir(dir string) (domain.Layer, error) {
	var l domain.Layer
	for _, sec := range domain.Sections {
		path := filepath.Join(dir, domain.LayerFileName(sec))
		data, err := afero.ReadFile(r.fs, path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return domain.Layer{}, zerr.With(zerr.Wrap(domain.ErrLayerRead, err.Error()), "path", path)
		}
		l = l.With(sec, string(data))
	}
	return l, nil
}
