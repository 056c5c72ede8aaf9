package layer

import (
	"slices"
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
)

// Merge combines layers from a single origin. Defaults are taken in reverse
// order so the first layer's defaults win; every other section keeps list order.
// Empty sections are skipped.
func Merge(layers ...domain.Layer) domain.Layer {
	var parts [len(domain.Sections)][]string
	for _, l := range layers {
		for _, sec := range domain.Sections {
			if text := l.Get(sec); text != "" {
				parts[sec] = append(parts[sec], text)
			}
		}
	}
	slices.Reverse(parts[domain.SectionDefaults])

	var merged domain.Layer
	for _, sec := range domain.Sections {
		merged = merged.With(sec, strings.Join(parts[sec], "\n"))
	}
	return merged
}
