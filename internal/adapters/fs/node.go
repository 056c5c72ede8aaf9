package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassbundle/internal/adapters/config"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the layer reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.layer_reader"
	// DigesterNodeID is the unique identifier for the digester Graft node.
	DigesterNodeID graft.ID = "adapter.fs.digester"
)

func init() {
	graft.Register(graft.Node[ports.LayerReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LayerReader, error) {
			return NewLayerReader(), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Digester, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewDigester(cfg.Digest)
		},
	})
}
