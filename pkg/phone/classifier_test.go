package phone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/moroccokit/pkg/cache"
	"github.com/dmitrymomot/moroccokit/pkg/phone"
)

func TestClassifier(t *testing.T) {
	t.Run("cached result matches stateless classify", func(t *testing.T) {
		c := phone.NewClassifier(16, 0)

		want, err := phone.Classify("0661234567")
		require.NoError(t, err)

		for range 3 {
			got, err := c.Classify("06 61 23 45 67")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		assert.Equal(t, 1, c.Len(), "equivalent inputs share one cache entry")
	})

	t.Run("invalid numbers are not cached", func(t *testing.T) {
		c := phone.NewClassifier(16, 0)

		_, err := c.Classify("not a number")
		assert.ErrorIs(t, err, phone.ErrInvalidNumber)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("entries expire wholesale via injected clock", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		clock := func() time.Time { return now }

		c := phone.NewClassifier(16, time.Minute, cache.WithClock(clock))

		_, err := c.Classify("0661234567")
		require.NoError(t, err)
		_, err = c.Classify("0522123456")
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())

		now = now.Add(2 * time.Minute)
		assert.Equal(t, 2, c.PurgeExpired())
		assert.Equal(t, 0, c.Len())
	})
}
