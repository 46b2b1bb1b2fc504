package ports

import (
	"context"
	"io"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// Telemetry records units of work such as a lane build or a driver run.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the unit's regular output.
	Stdout() io.Writer
	// Stderr returns a writer for the unit's diagnostic output.
	Stderr() io.Writer
	// Log records a message against the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
