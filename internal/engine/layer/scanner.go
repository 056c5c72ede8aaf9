// Package layer splits marked stylesheet sources into sections and merges
// layers contributed by the same origin.
package layer

import (
	"fmt"
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	markerOpen   = "/*--"
	markerClose  = "--*/"
	markerPrefix = "scss:"
)

// acceptedMarkers is quoted in the error for sources without any boundary.
const acceptedMarkers = "/*-- scss:defaults --*/, /*-- scss:rules --*/, /*-- scss:mixins --*/, " +
	"/*-- scss:functions --*/, or /*-- scss:uses --*/"

// scanner is a five-state machine. The state is the section receiving lines.
type scanner struct {
	state   domain.Section
	buckets [len(domain.Sections)][]string
	markers int
}

func newScanner() *scanner {
	return &scanner{state: domain.SectionDefaults}
}

func (s *scanner) feed(line string) {
	if next, ok := MatchBoundary(line); ok {
		s.state = next
		s.markers++
		return
	}
	s.buckets[s.state] = append(s.buckets[s.state], line)
}

func (s *scanner) layer() domain.Layer {
	var l domain.Layer
	for _, sec := range domain.Sections {
		l = l.With(sec, strings.Join(s.buckets[sec], "\n"))
	}
	return l
}

// Parse splits raw into a Layer. Lines before the first marker belong to
// defaults. hint identifies the source in errors.
func Parse(raw, hint string) (domain.Layer, error) {
	sc := newScanner()
	for _, line := range splitLines(raw) {
		sc.feed(line)
	}

	if sc.markers == 0 {
		msg := fmt.Sprintf("%s doesn't contain at least one layer boundary (%s)", hint, acceptedMarkers)
		err := zerr.Wrap(domain.ErrMalformedLayer, msg)
		return domain.Layer{}, zerr.With(err, "layer", hint)
	}

	return sc.layer(), nil
}

// MatchBoundary reports whether line is a section marker and which section it opens.
// Surrounding whitespace is ignored, and so are spaces and tabs inside the delimiters.
func MatchBoundary(line string) (domain.Section, bool) {
	line = strings.TrimSpace(line)
	if len(line) < len(markerOpen)+len(markerClose) ||
		!strings.HasPrefix(line, markerOpen) ||
		!strings.HasSuffix(line, markerClose) {
		return 0, false
	}

	inner := strings.Trim(line[len(markerOpen):len(line)-len(markerClose)], " \t")
	name, ok := strings.CutPrefix(inner, markerPrefix)
	if !ok {
		return 0, false
	}

	sec, err := domain.ParseSection(name)
	if err != nil {
		return 0, false
	}
	return sec, true
}

// Marker returns the canonical boundary line for a section.
func Marker(s domain.Section) string {
	return markerOpen + " " + markerPrefix + s.String() + " " + markerClose
}

func splitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}
