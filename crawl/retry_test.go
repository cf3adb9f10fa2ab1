package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(maxAttempts int) *crawl.Policy {
	return &crawl.Policy{MaxAttempts: maxAttempts, Timeout: time.Second}
}

func TestPolicy_Do(t *testing.T) {
	t.Parallel()

	t.Run("three timeouts then a success under max 5 yields the success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := testPolicy(5).Do(context.Background(), "http://example.com", func(context.Context) error {
			calls++
			if calls <= 3 {
				return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "connect timeout")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("empty results draw on the same counter as transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := testPolicy(4).Do(context.Background(), "http://example.com", func(context.Context) error {
			calls++
			if calls%2 == 0 {
				return cnesbeds.Errorf(cnesbeds.EEMPTY, "no links")
			}
			return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "read timeout")
		})

		require.Error(t, err)
		assert.Equal(t, cnesbeds.ERETRYLIMIT, cnesbeds.ErrorCode(err))
		assert.Equal(t, 4, calls)
	})

	t.Run("exhaustion reports the URL and the configured limits", func(t *testing.T) {
		t.Parallel()

		err := testPolicy(2).Do(context.Background(), "http://example.com/index", func(context.Context) error {
			return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "read timeout")
		})

		require.Error(t, err)
		msg := cnesbeds.ErrorMessage(err)
		assert.Contains(t, msg, "http://example.com/index")
		assert.Contains(t, msg, "2 attempts")
		assert.Contains(t, msg, "1s timeout")
	})

	t.Run("unreachable host bypasses the remaining budget", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := testPolicy(10).Do(context.Background(), "http://example.com", func(context.Context) error {
			calls++
			return cnesbeds.Errorf(cnesbeds.EUNREACHABLE, "connection refused")
		})

		require.Error(t, err)
		assert.Equal(t, cnesbeds.EUNREACHABLE, cnesbeds.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("fatal errors are never retried", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := testPolicy(10).Do(context.Background(), "http://example.com", func(context.Context) error {
			calls++
			return cnesbeds.Errorf(cnesbeds.EINVALID, "count is not a number")
		})

		require.Error(t, err)
		assert.Equal(t, cnesbeds.EINVALID, cnesbeds.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("honors context cancellation between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := testPolicy(100).Do(ctx, "http://example.com", func(context.Context) error {
			calls++
			cancel()
			return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "read timeout")
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, calls)
	})

	t.Run("single-attempt budget fails immediately on a retryable error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := testPolicy(1).Do(context.Background(), "http://example.com", func(context.Context) error {
			calls++
			return cnesbeds.Errorf(cnesbeds.EEMPTY, "no links")
		})

		require.Error(t, err)
		assert.Equal(t, cnesbeds.ERETRYLIMIT, cnesbeds.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})
}
