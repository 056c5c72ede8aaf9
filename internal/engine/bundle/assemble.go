// Package bundle merges the layers of several bundles across origins into one
// compilation unit.
package bundle

import (
	"slices"
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
)

// Options controls optional output of Assemble.
type Options struct {
	// Annotate prefixes every contributor with an origin annotation line.
	Annotate bool
}

// Assemble concatenates the sections of every bundle. Section order is uses,
// functions, defaults, mixins, rules. Within a section origins run framework,
// theme, user, except defaults which run user, theme, framework with each
// origin's bundle list reversed so the compiler's first default wins for the
// user. Non-empty contributors are separated by a blank line.
func Assemble(bundles []domain.Bundle, opts Options) domain.CompilationUnit {
	var parts []string
	var defaults []string

	for _, sec := range domain.Sections {
		for _, origin := range originOrder(sec) {
			texts := collect(bundles, origin, sec)
			if sec == domain.SectionDefaults {
				slices.Reverse(texts)
				defaults = append(defaults, texts...)
			}
			for _, text := range texts {
				if opts.Annotate {
					text = domain.OriginAnnotation(origin, sec) + "\n" + text
				}
				parts = append(parts, text)
			}
		}
	}

	var loadPaths []string
	for _, b := range bundles {
		loadPaths = append(loadPaths, b.LoadPaths()...)
	}

	return domain.CompilationUnit{
		Source:    strings.Join(parts, "\n\n"),
		LoadPaths: domain.UniqueStrings(loadPaths),
		Defaults:  strings.Join(defaults, "\n\n"),
	}
}

func originOrder(sec domain.Section) []domain.Origin {
	order := domain.Origins[:]
	if sec == domain.SectionDefaults {
		order = slices.Clone(order)
		slices.Reverse(order)
	}
	return order
}

func collect(bundles []domain.Bundle, origin domain.Origin, sec domain.Section) []string {
	var texts []string
	for _, b := range bundles {
		l, ok := b.Layer(origin)
		if !ok {
			continue
		}
		if text := l.Get(sec); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
