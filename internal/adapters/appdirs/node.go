package appdirs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassbundle/internal/adapters/config"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
)

// NodeID is the unique identifier for the cache directory resolver Graft node.
const NodeID graft.ID = "adapter.cache_dir_resolver"

func init() {
	graft.Register(graft.Node[ports.CacheDirResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.CacheDirResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg.CacheDir), nil
		},
	})
}
