package domain

import "slices"

// Origin identifies who contributed a layer.
type Origin uint8

const (
	// OriginFramework is the base framework layer.
	OriginFramework Origin = iota
	// OriginTheme is the theme layer shipped by the document system.
	OriginTheme
	// OriginUser is the layer supplied by the end user.
	OriginUser
)

// Origins lists every origin in precedence order, lowest first.
var Origins = [...]Origin{OriginFramework, OriginTheme, OriginUser}

// String returns the label used in origin annotations.
func (o Origin) String() string {
	switch o {
	case OriginFramework:
		return "framework"
	case OriginTheme:
		return "quarto"
	case OriginUser:
		return "user"
	default:
		return "unknown"
	}
}

// Bundle groups the layers of one logical stylesheet source.
// Bundles are immutable once built; use NewBundle.
type Bundle struct {
	key       string
	framework *Layer
	theme     *Layer
	user      *Layer
	loadPaths []string
}

// BundleOption configures a Bundle during construction.
type BundleOption func(*Bundle)

// WithFramework sets the framework layer.
func WithFramework(l Layer) BundleOption {
	return func(b *Bundle) { b.framework = &l }
}

// WithTheme sets the theme layer.
func WithTheme(l Layer) BundleOption {
	return func(b *Bundle) { b.theme = &l }
}

// WithUser sets the user layer.
func WithUser(l Layer) BundleOption {
	return func(b *Bundle) { b.user = &l }
}

// WithLoadPaths appends directories the compiler searches for imports.
func WithLoadPaths(paths ...string) BundleOption {
	return func(b *Bundle) { b.loadPaths = append(b.loadPaths, paths...) }
}

// NewBundle builds a Bundle identified by key.
func NewBundle(key string, opts ...BundleOption) Bundle {
	b := Bundle{key: key}
	for _, opt := range opts {
		opt(&b)
	}
	b.loadPaths = slices.Clone(b.loadPaths)
	return b
}

// Key returns the bundle identifier.
func (b Bundle) Key() string {
	return b.key
}

// Layer returns the layer contributed by origin, if any.
func (b Bundle) Layer(o Origin) (Layer, bool) {
	var l *Layer
	switch o {
	case OriginFramework:
		l = b.framework
	case OriginTheme:
		l = b.theme
	case OriginUser:
		l = b.user
	}
	if l == nil {
		return Layer{}, false
	}
	return *l, true
}

// LoadPaths returns a copy of the bundle's load paths.
func (b Bundle) LoadPaths() []string {
	return slices.Clone(b.loadPaths)
}

// UniqueStrings removes duplicates keeping the first occurrence of each value.
func UniqueStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
