// Package postprocess rewrites compiled artifacts and captures debug dumps.
package postprocess

import (
	"os"
	"regexp"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

var sourceMappingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^//#\s*sourceMappingURL=.*\.map$`),
	regexp.MustCompile(`/\*# sourceMappingURL=.* \*/`),
}

// StripSourceMappingURL removes embedded source-map references from the file
// at path. The file keeps its permission bits.
func StripSourceMappingURL(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPostProcess.Error()), "path", path)
	}

	//nolint:gosec // path is an artifact produced by the compiler
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPostProcess.Error()), "path", path)
	}

	cleaned := StripSourceMappingURLs(data)
	if len(cleaned) == len(data) {
		return nil
	}

	if err := os.WriteFile(path, cleaned, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPostProcess.Error()), "path", path)
	}
	// WriteFile only applies the mode on creation.
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPostProcess.Error()), "path", path)
	}
	return nil
}

// StripSourceMappingURLs removes source-map references from compiled CSS.
func StripSourceMappingURLs(css []byte) []byte {
	for _, re := range sourceMappingPatterns {
		css = re.ReplaceAll(css, nil)
	}
	return css
}
