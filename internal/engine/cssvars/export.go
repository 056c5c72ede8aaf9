// Package cssvars mirrors merged variable defaults as CSS custom properties
// and finds those properties again in compiled output.
package cssvars

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
)

var exportedProperty = regexp.MustCompile(regexp.QuoteMeta(domain.ExportPropertyPrefix) + `[^;}]+;?`)

// MetaNamespace is the namespace under which the export block loads sass:meta.
// It is distinct from "meta" so input that already uses the module is unaffected.
const MetaNamespace = "sassbundle-meta"

// MetaUse loads the module the export block relies on.
var MetaUse = fmt.Sprintf("@use \"sass:meta\" as %s;", MetaNamespace)

// ExportBlock renders a :root rule exposing every top-level variable declared
// in defaults as a custom property. Literal maps are skipped while scanning;
// values that only turn out to be maps or null once evaluated are skipped by a
// guard the compiler checks. It returns an empty string when nothing is
// declared. The block needs MetaUse ahead of it, see Augment.
func ExportBlock(defaults string) (string, error) {
	names, err := DeclaredVariables(defaults)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  @if %s.type-of($%s) != \"map\" and $%s != null {\n", MetaNamespace, name, name)
		fmt.Fprintf(&b, "    %s%s: #{$%s};\n", domain.ExportPropertyPrefix, name, name)
		b.WriteString("  }\n")
	}
	b.WriteString("}")
	return b.String(), nil
}

// Augment returns input with the export block for defaults appended and the
// module it needs loaded before the first rule. Input is returned unchanged
// when defaults declare nothing.
func Augment(input, defaults string) (string, error) {
	block, err := ExportBlock(defaults)
	if err != nil {
		return "", err
	}
	if block == "" {
		return input, nil
	}
	return withUse(input) + "\n\n" + block, nil
}

// withUse places MetaUse first, after a leading @charset if there is one.
func withUse(input string) string {
	if strings.HasPrefix(input, "@charset") {
		if end := strings.IndexByte(input, '\n'); end >= 0 {
			return input[:end+1] + MetaUse + "\n" + input[end+1:]
		}
		return input + "\n" + MetaUse
	}
	return MetaUse + "\n" + input
}

// Extract returns every exported custom-property declaration found in css, in order.
func Extract(css string) []string {
	return exportedProperty.FindAllString(css, -1)
}

// DeclaredVariables lists the names of top-level variable declarations in
// source order, without the leading '$' and without duplicates.
func DeclaredVariables(src string) ([]string, error) {
	s := &varScanner{src: src, atStart: true, seen: make(map[string]struct{})}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.names, nil
}
