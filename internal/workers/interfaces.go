// Package workers provides background workers running alongside the
// interactive client. Workers observe server state and never retry or
// replay vault operations on their own.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle. Start launches the
// job's goroutine; Stop cancels it and blocks until it has fully exited.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
