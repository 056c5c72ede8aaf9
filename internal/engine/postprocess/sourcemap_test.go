package postprocess_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/engine/postprocess"
)

func TestStripSourceMappingURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "line comment",
			in:   "a{color:red}\n//# sourceMappingURL=out.css.map",
			want: "a{color:red}\n",
		},
		{
			name: "block comment",
			in:   "a{color:red}\n/*# sourceMappingURL=data:application/json;base64,e30= */\n",
			want: "a{color:red}\n\n",
		},
		{
			name: "no reference",
			in:   "a{color:red}\n",
			want: "a{color:red}\n",
		},
		{
			name: "line comment not ending in map is kept",
			in:   "//# sourceMappingURL=out.txt",
			want: "//# sourceMappingURL=out.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postprocess.StripSourceMappingURLs([]byte(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStripSourceMappingURL_PreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.css")
	require.NoError(t, os.WriteFile(path, []byte("a{}\n/*# sourceMappingURL=out.css.map */"), domain.PrivateFilePerm))
	require.NoError(t, os.Chmod(path, domain.PrivateFilePerm))

	require.NoError(t, postprocess.StripSourceMappingURL(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a{}\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())
}

func TestStripSourceMappingURL_Missing(t *testing.T) {
	err := postprocess.StripSourceMappingURL(filepath.Join(t.TempDir(), "nope.css"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPostProcess.Error())
}
