package lingo_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
)

func TestNewReloader(t *testing.T) {
	t.Parallel()

	t.Run("rejects a nil engine", func(t *testing.T) {
		t.Parallel()
		_, err := lingo.NewReloader(nil, "@every 1m")
		require.ErrorIs(t, err, lingo.ErrNilEngine)
	})

	t.Run("rejects a malformed schedule", func(t *testing.T) {
		t.Parallel()
		e, err := lingo.New()
		require.NoError(t, err)

		_, err = lingo.NewReloader(e, "not a schedule")
		require.Error(t, err)
	})

	t.Run("reloads the current locale on schedule", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int64
		e, err := lingo.New(lingo.WithNamespace("common",
			func(_ context.Context, locale string) (map[string]any, error) {
				if locale == "en" {
					calls.Add(1)
				}
				return map[string]any{"k": "v"}, nil
			},
		))
		require.NoError(t, err)

		r, err := lingo.NewReloader(e, "@every 100ms")
		require.NoError(t, err)

		r.Start()
		defer r.Stop()

		require.Eventually(t, func() bool {
			return calls.Load() >= 2
		}, 5*time.Second, 20*time.Millisecond)

		assert.Equal(t, "v", e.Translate("k"))
	})

	t.Run("stop waits and prevents further runs", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int64
		e, err := lingo.New(lingo.WithNamespace("common",
			func(_ context.Context, _ string) (map[string]any, error) {
				calls.Add(1)
				return nil, nil
			},
		))
		require.NoError(t, err)

		r, err := lingo.NewReloader(e, "@every 50ms")
		require.NoError(t, err)

		r.Start()
		require.Eventually(t, func() bool {
			return calls.Load() >= 1
		}, 5*time.Second, 10*time.Millisecond)
		r.Stop()

		settled := calls.Load()
		time.Sleep(150 * time.Millisecond)
		require.Equal(t, settled, calls.Load())
	})
}
