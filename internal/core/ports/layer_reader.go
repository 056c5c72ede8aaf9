package ports

import "go.trai.ch/sassbundle/internal/core/domain"

// LayerReader loads layers from files or directory-form layers.
type LayerReader interface {
	// Read loads a single layer from path.
	Read(path string) (domain.Layer, error)

	// ReadAll loads every path and returns the layers in input order.
	ReadAll(paths ...string) ([]domain.Layer, error)
}
