package layer

import (
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
)

// Format renders l as marked source in canonical section order.
// Every marker is written, so the result always parses.
func Format(l domain.Layer) string {
	lines := make([]string, 0, 2*len(domain.Sections))
	for _, sec := range domain.Sections {
		lines = append(lines, Marker(sec))
		if text := l.Get(sec); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
