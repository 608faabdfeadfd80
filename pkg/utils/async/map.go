package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Map runs handler for every item with at most limit handlers in flight and
// returns the outputs in input order.
//
// Behavior:
//   - limit <= 1 runs items one after another on the calling goroutine
//   - the ctxlog logger of ctx is visible to every handler
//   - a panicking handler is logged with its stack and reported as an error
//   - the first error cancels the context passed to remaining handlers
func Map[In, Out any](ctx context.Context, limit int, items []In, handler func(ctx context.Context, item In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(items))

	if limit <= 1 {
		for i, item := range items {
			v, err := safeCall(ctx, item, handler)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, item := range items {
		eg.Go(func() error {
			v, err := safeCall(egCtx, item, handler)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func safeCall[In, Out any](ctx context.Context, item In, handler func(ctx context.Context, item In) (Out, error)) (v Out, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("panic in async handler",
				"recover", r,
				"stack", string(stack))
			err = goerr.New("panic in async handler", goerr.V("recover", fmt.Sprint(r)))
		}
	}()

	return handler(ctx, item)
}
