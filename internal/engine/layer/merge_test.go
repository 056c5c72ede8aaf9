package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/engine/layer"
)

func TestMerge(t *testing.T) {
	a := domain.Layer{Uses: "@use 'a';", Defaults: "$c: a;", Rules: ".a {}", Functions: "@function a() {}", Mixins: "@mixin a {}"}
	b := domain.Layer{Defaults: "$c: b;", Rules: ".b {}"}
	c := domain.Layer{Uses: "@use 'c';", Defaults: "$c: c;", Mixins: "@mixin c {}"}

	got := layer.Merge(a, b, c)

	assert.Equal(t, domain.Layer{
		Uses:      "@use 'a';\n@use 'c';",
		Functions: "@function a() {}",
		Defaults:  "$c: c;\n$c: b;\n$c: a;",
		Mixins:    "@mixin a {}\n@mixin c {}",
		Rules:     ".a {}\n.b {}",
	}, got)
}

func TestMerge_SkipsEmpty(t *testing.T) {
	got := layer.Merge(domain.Layer{}, domain.Layer{Rules: "x"}, domain.Layer{})
	assert.Equal(t, domain.Layer{Rules: "x"}, got)
}

func TestMerge_None(t *testing.T) {
	assert.True(t, layer.Merge().IsEmpty())
}

func TestMerge_Single(t *testing.T) {
	l := domain.Layer{Uses: "u", Functions: "f", Defaults: "d", Mixins: "m", Rules: "r"}
	assert.Equal(t, l, layer.Merge(l))
}
