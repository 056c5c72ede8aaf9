package domain

import "go.trai.ch/zerr"

// Section names one of the five slots of a layer.
type Section uint8

const (
	// SectionUses holds module imports that must precede everything else.
	SectionUses Section = iota
	// SectionFunctions holds function definitions.
	SectionFunctions
	// SectionDefaults holds overridable variable defaults.
	SectionDefaults
	// SectionMixins holds mixin definitions.
	SectionMixins
	// SectionRules holds the style rules that produce output.
	SectionRules
)

// Sections lists every section in canonical order.
var Sections = [...]Section{
	SectionUses,
	SectionFunctions,
	SectionDefaults,
	SectionMixins,
	SectionRules,
}

var sectionNames = [...]string{
	SectionUses:      "uses",
	SectionFunctions: "functions",
	SectionDefaults:  "defaults",
	SectionMixins:    "mixins",
	SectionRules:     "rules",
}

// String returns the marker name of the section.
func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// ParseSection maps a marker name back to its Section.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if sectionNames[s] == name {
			return s, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownSection, "unrecognized section name"), "section", name)
}

// Layer is one contributor's stylesheet fragment split into its five sections.
// Absent sections are empty strings.
type Layer struct {
	Uses      string
	Functions string
	Defaults  string
	Mixins    string
	Rules     string
}

// Get returns the text of the given section.
func (l Layer) Get(s Section) string {
	switch s {
	case SectionUses:
		return l.Uses
	case SectionFunctions:
		return l.Functions
	case SectionDefaults:
		return l.Defaults
	case SectionMixins:
		return l.Mixins
	case SectionRules:
		return l.Rules
	default:
		return ""
	}
}

// With returns a copy of the layer with the given section replaced.
func (l Layer) With(s Section, text string) Layer {
	switch s {
	case SectionUses:
		l.Uses = text
	case SectionFunctions:
		l.Functions = text
	case SectionDefaults:
		l.Defaults = text
	case SectionMixins:
		l.Mixins = text
	case SectionRules:
		l.Rules = text
	}
	return l
}

// IsEmpty reports whether every section is empty.
func (l Layer) IsEmpty() bool {
	return l == Layer{}
}
