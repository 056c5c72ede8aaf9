package ports

import (
	"context"

	"go.trai.ch/sassbundle/internal/core/domain"
)

// Compiler turns stylesheet source into compiled CSS.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles req.Input and writes the result to req.OutputPath.
	// It returns the path actually written.
	Compile(ctx context.Context, req domain.CompileRequest) (string, error)
}
