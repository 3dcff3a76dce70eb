package context

import (
	"context"
	"testing"
	"time"
)

// WithTest derives ctx which is canceled a second before the deadline of t,
// leaving time for cleanups (truncating tables, closing pools).
//
// When t has no deadline, ctx is returned as it is.
func WithTest(ctx context.Context, t *testing.T) (context.Context, func()) {
	if deadline, ok := t.Deadline(); ok {
		return context.WithDeadline(ctx, deadline.Add(-time.Second))
	}
	return ctx, func() {}
}
