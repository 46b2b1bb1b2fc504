package ports

import (
	"context"
	"io"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// Builder runs the build system for one pass.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build runs a check pass described by req. Everything the build system
	// prints on its standard output goes to stdout, which is how a build plan
	// is captured when req.Plan is set.
	Build(ctx context.Context, req domain.BuildRequest, stdout io.Writer) (*domain.BuildOutput, error)
}
