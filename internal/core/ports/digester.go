package ports

// Digester derives a deterministic cache key from bytes.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Digest returns a stable hex key for data.
	Digest(data []byte) string
}
