package fs

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Digester = (*XXHashDigester)(nil)
	_ ports.Digester = (*Blake3Digester)(nil)
)

// XXHashDigester derives cache keys with XXHash64.
type XXHashDigester struct{}

// Digest returns the zero-padded hex XXHash64 of data.
func (XXHashDigester) Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Blake3Digester derives cache keys with BLAKE3-256.
type Blake3Digester struct{}

// Digest returns the hex BLAKE3-256 of data.
func (Blake3Digester) Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewDigester returns the digester registered under name.
func NewDigester(name string) (ports.Digester, error) {
	switch name {
	case "", domain.DigestXXHash:
		return XXHashDigester{}, nil
	case domain.DigestBlake3:
		return Blake3Digester{}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDigest, "unsupported digest"), "digest", name)
	}
}
