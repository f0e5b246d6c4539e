package core

import (
	"context"
	"time"
)

// DefaultOperationTimeout bounds a single remote operation when no timeout is
// configured.
const DefaultOperationTimeout = 30 * time.Second

// WithTimeout derives a context for one remote operation.
// A non-positive d falls back to DefaultOperationTimeout.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	if d <= 0 {
		d = DefaultOperationTimeout
	}

	return context.WithTimeout(parent, d)
}
