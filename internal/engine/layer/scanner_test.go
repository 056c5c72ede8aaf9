package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/engine/layer"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Layer
	}{
		{
			name: "all sections",
			raw: "/*-- scss:uses --*/\n@use 'sass:math';\n" +
				"/*-- scss:functions --*/\n@function f() { @return 1; }\n" +
				"/*-- scss:defaults --*/\n$a: 1 !default;\n" +
				"/*-- scss:mixins --*/\n@mixin m {}\n" +
				"/*-- scss:rules --*/\na { color: red; }",
			want: domain.Layer{
				Uses:      "@use 'sass:math';",
				Functions: "@function f() { @return 1; }",
				Defaults:  "$a: 1 !default;",
				Mixins:    "@mixin m {}",
				Rules:     "a { color: red; }",
			},
		},
		{
			name: "text before first marker goes to defaults",
			raw:  "$primary: blue;\n/*-- scss:rules --*/\nh1 { color: $primary; }",
			want: domain.Layer{
				Defaults: "$primary: blue;",
				Rules:    "h1 { color: $primary; }",
			},
		},
		{
			name: "repeated section appends",
			raw:  "/*-- scss:rules --*/\na {}\n/*-- scss:defaults --*/\n$x: 1;\n/*-- scss:rules --*/\nb {}",
			want: domain.Layer{
				Defaults: "$x: 1;",
				Rules:    "a {}\nb {}",
			},
		},
		{
			name: "whitespace inside and around marker",
			raw:  "  /*--\t scss:mixins \t--*/  \n@mixin a {}",
			want: domain.Layer{Mixins: "@mixin a {}"},
		},
		{
			name: "crlf line endings",
			raw:  "/*-- scss:defaults --*/\r\n$a: 1;\r\n/*-- scss:rules --*/\r\nb {}\r\n",
			want: domain.Layer{
				Defaults: "$a: 1;",
				Rules:    "b {}\n",
			},
		},
		{
			name: "marker-like text inside a line is content",
			raw:  "/*-- scss:rules --*/\na {} /*-- scss:defaults --*/",
			want: domain.Layer{Rules: "a {} /*-- scss:defaults --*/"},
		},
		{
			name: "unknown section name is content",
			raw:  "/*-- scss:rules --*/\n/*-- scss:variables --*/",
			want: domain.Layer{Rules: "/*-- scss:variables --*/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := layer.Parse(tt.raw, "test.scss")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NoMarker(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "plain css", raw: "a { color: red; }\n$x: 1;"},
		{name: "inline marker only", raw: "a {} /*-- scss:rules --*/"},
		{name: "unknown section", raw: "/*-- scss:variables --*/\n$x: 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layer.Parse(tt.raw, "custom.scss")
			require.ErrorIs(t, err, domain.ErrMalformedLayer)
			assert.ErrorContains(t, err, "custom.scss")
			assert.ErrorContains(t, err, "/*-- scss:uses --*/")
		})
	}
}

func TestMatchBoundary(t *testing.T) {
	tests := []struct {
		line   string
		want   domain.Section
		wantOK bool
	}{
		{line: "/*-- scss:uses --*/", want: domain.SectionUses, wantOK: true},
		{line: "/*--scss:functions--*/", want: domain.SectionFunctions, wantOK: true},
		{line: "\t/*-- scss:defaults --*/\t", want: domain.SectionDefaults, wantOK: true},
		{line: "/*-- scss:mixins   --*/", want: domain.SectionMixins, wantOK: true},
		{line: "/*-- scss:rules --*/", want: domain.SectionRules, wantOK: true},
		{line: "/*-- scss: rules --*/"},
		{line: "/* scss:rules */"},
		{line: "/*-- rules --*/"},
		{line: "/*--*/"},
		{line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := layer.MatchBoundary(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
