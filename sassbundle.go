// Package sassbundle assembles stylesheets from framework, theme and user
// layers and compiles them through a content-addressed cache.
//
// Layers are parsed from files carrying section markers such as
//
//	/*-- scss:defaults --*/
//
// or read from directories holding one partial per section. Bundles group
// the layers of one origin set, and Client.CompileSass merges any number of
// bundles and returns the path of the compiled stylesheet.
package sassbundle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassbundle/internal/adapters/workspace"
	"go.trai.ch/sassbundle/internal/app"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/sassbundle/internal/engine/bundle"
	"go.trai.ch/sassbundle/internal/engine/layer"
	_ "go.trai.ch/sassbundle/internal/wiring" // Register providers
)

type (
	// Layer holds the five sections contributed by one source.
	Layer = domain.Layer
	// Section names one of the five layer sections.
	Section = domain.Section
	// Origin tells who contributed a layer.
	Origin = domain.Origin
	// Bundle groups the framework, theme and user layers of one unit.
	Bundle = domain.Bundle
	// BundleOption configures NewBundle.
	BundleOption = domain.BundleOption
	// CompilationUnit is the merged source of several bundles.
	CompilationUnit = domain.CompilationUnit
	// Config is the resolved runtime configuration.
	Config = domain.Config
	// Workspace is the scratch area session caches and uncached artifacts live in.
	Workspace = ports.Workspace
	// ScratchDir is the default Workspace backed by a temporary directory.
	ScratchDir = workspace.Workspace
	// Job is one entry of a CompileAll batch.
	Job = app.Job
)

// Sections and origins.
const (
	SectionUses      = domain.SectionUses
	SectionFunctions = domain.SectionFunctions
	SectionDefaults  = domain.SectionDefaults
	SectionMixins    = domain.SectionMixins
	SectionRules     = domain.SectionRules

	OriginFramework = domain.OriginFramework
	OriginTheme     = domain.OriginTheme
	OriginUser      = domain.OriginUser
)

// Errors callers can match with errors.Is.
var (
	ErrMalformedLayer           = domain.ErrMalformedLayer
	ErrLayerNotFound            = domain.ErrLayerNotFound
	ErrLayerRead                = domain.ErrLayerRead
	ErrCompileFailed            = domain.ErrCompileFailed
	ErrCompilerStart            = domain.ErrCompilerStart
	ErrCustomPropertyExtraction = domain.ErrCustomPropertyExtraction
	ErrWorkspaceClosed          = domain.ErrWorkspaceClosed
)

// Bundle construction.
var (
	NewBundle     = domain.NewBundle
	WithFramework = domain.WithFramework
	WithTheme     = domain.WithTheme
	WithUser      = domain.WithUser
	WithLoadPaths = domain.WithLoadPaths
)

// ParseLayer splits marked source into a Layer. hint names the source in errors.
func ParseLayer(raw, hint string) (Layer, error) {
	return layer.Parse(raw, hint)
}

// FormatLayer renders l back into marked source.
func FormatLayer(l Layer) string {
	return layer.Format(l)
}

// MergeLayers combines layers of one origin. The first layer's defaults win.
func MergeLayers(layers ...Layer) Layer {
	return layer.Merge(layers...)
}

// Assemble merges bundles without compiling them.
func Assemble(bundles []Bundle, annotate bool) CompilationUnit {
	return bundle.Assemble(bundles, bundle.Options{Annotate: annotate})
}

// NewWorkspace creates a scratch directory under parent. The caller must
// call Cleanup once the compiled artifacts are no longer needed.
func NewWorkspace(parent string) (*ScratchDir, error) {
	return workspace.New(parent)
}

// Client compiles bundles using the configuration found from the working
// directory.
type Client struct {
	app *app.App
	cfg *domain.Config
}

// Open resolves the configuration and builds a Client.
func Open(ctx context.Context) (*Client, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, err
	}
	return &Client{app: components.App, cfg: components.Config}, nil
}

// Config returns a copy of the configuration in use.
func (c *Client) Config() Config {
	return *c.cfg
}

// ReadLayer loads a layer file or directory.
func (c *Client) ReadLayer(path string) (Layer, error) {
	return c.app.ReadLayer(path)
}

// ReadLayers loads several layers and merges them as one origin.
func (c *Client) ReadLayers(paths ...string) (Layer, error) {
	return c.app.ReadLayers(paths...)
}

// CompileSass merges bundles and compiles them, returning the artifact path.
func (c *Client) CompileSass(ctx context.Context, bundles []Bundle, ws Workspace, minified bool) (string, error) {
	return c.app.CompileSass(ctx, bundles, ws, minified)
}

// CompileWithCache compiles already merged input under key. An empty key
// disables caching for this call.
func (c *Client) CompileWithCache(
	ctx context.Context,
	input string,
	loadPaths []string,
	ws Workspace,
	key string,
	compressed bool,
) (string, error) {
	return c.app.CompileWithCache(ctx, input, loadPaths, ws, key, compressed)
}

// CompileAll compiles a batch concurrently and returns paths in job order.
func (c *Client) CompileAll(ctx context.Context, jobs []Job, ws Workspace) ([]string, error) {
	return c.app.CompileAll(ctx, jobs, ws)
}
