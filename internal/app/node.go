package app

import (
	"context"
	"sync/atomic"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassbundle/internal/adapters/appdirs"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/dartsass"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/sassbundle/internal/engine/postprocess"
	"go.trai.ch/sassbundle/internal/engine/sasscache"
)

const (
	// RegistryNodeID is the unique identifier for the cache registry Graft node.
	RegistryNodeID graft.ID = "engine.cache_registry"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// jsonSwitch is implemented by loggers that can switch to JSON output.
type jsonSwitch interface {
	SetJSON(enable bool)
}

func init() {
	graft.Register(graft.Node[*sasscache.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			appdirs.NodeID,
			cas.NodeID,
			dartsass.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runRegistryNode,
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			fs.ReaderNodeID,
			fs.DigesterNodeID,
			RegistryNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runRegistryNode(ctx context.Context) (*sasscache.Registry, error) {
	resolver, err := graft.Dep[ports.CacheDirResolver](ctx)
	if err != nil {
		return nil, err
	}

	indexes, err := graft.Dep[ports.IndexFactory](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return sasscache.NewRegistry(resolver, indexes, sasscache.Deps{
		Compiler: compiler,
		Logger:   log,
		Tracer:   tracer,
		Finish:   postprocess.StripSourceMappingURL,
	}), nil
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.LayerReader](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*sasscache.Registry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	if js, ok := log.(jsonSwitch); ok && cfg.LogJSON {
		js.SetJSON(true)
	}

	dumper := postprocess.NewDebugDumper(cfg.DumpPrefix, new(atomic.Uint64))
	return New(cfg, reader, digester, registry, dumper, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg), nil
}
