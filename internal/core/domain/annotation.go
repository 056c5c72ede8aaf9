package domain

import (
	"encoding/json"
	"strings"
)

const (
	// AnnotationPrefix starts every analysis annotation line.
	AnnotationPrefix = "// quarto-scss-analysis-annotation "

	// ExportPropertyPrefix prefixes custom properties that mirror merged defaults.
	ExportPropertyPrefix = "--quarto-scss-export-"
)

type cssVarsPayload struct {
	CSSVars []string `json:"css-vars"`
}

type originPayload struct {
	Origin string `json:"origin"`
}

// CSSVarsAnnotation renders the annotation listing custom properties found in compiled output.
func CSSVarsAnnotation(vars []string) string {
	if vars == nil {
		vars = []string{}
	}
	return annotate(cssVarsPayload{CSSVars: vars})
}

// OriginAnnotation renders the annotation marking where a contributor came from.
func OriginAnnotation(origin Origin, section Section) string {
	return annotate(originPayload{Origin: origin.String() + " " + section.String()})
}

func annotate(v any) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	// Plain structs of strings cannot fail to encode.
	_ = enc.Encode(v)
	return AnnotationPrefix + strings.TrimSuffix(b.String(), "\n")
}
