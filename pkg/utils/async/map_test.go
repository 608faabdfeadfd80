package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/geode-sdk/codegenrun/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

func double(_ context.Context, n int) (int, error) {
	return n * 2, nil
}

func TestMap(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	want := []int{2, 4, 6, 8, 10, 12, 14, 16}

	for _, limit := range []int{0, 1, 3, 16} {
		t.Run("keeps input order", func(t *testing.T) {
			got, err := async.Map(context.Background(), limit, items, double)
			gt.NoError(t, err)
			gt.Equal(t, got, want)
		})
	}

	t.Run("empty input", func(t *testing.T) {
		got, err := async.Map(context.Background(), 4, []int{}, double)
		gt.NoError(t, err)
		gt.Equal(t, len(got), 0)
	})

	t.Run("respects limit", func(t *testing.T) {
		var inFlight, peak atomic.Int32
		_, err := async.Map(context.Background(), 2, items, func(ctx context.Context, n int) (int, error) {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			return n, nil
		})
		gt.NoError(t, err)
		gt.True(t, peak.Load() <= 2)
	})

	t.Run("sequential stops at first error", func(t *testing.T) {
		var calls int
		_, err := async.Map(context.Background(), 1, items, func(ctx context.Context, n int) (int, error) {
			calls++
			if n == 3 {
				return 0, errors.New("boom")
			}
			return n, nil
		})
		gt.Error(t, err)
		gt.Equal(t, calls, 3)
	})

	t.Run("parallel returns error", func(t *testing.T) {
		_, err := async.Map(context.Background(), 4, items, func(ctx context.Context, n int) (int, error) {
			if n == 5 {
				return 0, errors.New("boom")
			}
			return n, nil
		})
		gt.Error(t, err)
	})

	t.Run("recovers from panic with stack trace", func(t *testing.T) {
		logBuf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelError}))
		ctx := ctxlog.With(context.Background(), logger)

		_, err := async.Map(ctx, 2, items, func(ctx context.Context, n int) (int, error) {
			if n == 4 {
				panic("test panic with stack")
			}
			return n, nil
		})
		gt.Error(t, err)

		logOutput := logBuf.String()
		gt.True(t, strings.Contains(logOutput, "panic in async handler"))
		gt.True(t, strings.Contains(logOutput, "test panic with stack"))
		gt.True(t, strings.Contains(logOutput, "goroutine"))
	})

	t.Run("preserves context logger", func(t *testing.T) {
		logBuf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		_, err := async.Map(ctx, 4, items, func(ctx context.Context, n int) (int, error) {
			ctxlog.From(ctx).Info("handled", "n", n)
			return n, nil
		})
		gt.NoError(t, err)
		gt.Equal(t, strings.Count(logBuf.String(), "handled"), len(items))
	})
}
