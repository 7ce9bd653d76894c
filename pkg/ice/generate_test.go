package ice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/moroccokit/pkg/ice"
)

func TestGenerate(t *testing.T) {
	t.Run("always validates", func(t *testing.T) {
		for range 100 {
			id := ice.Generate()
			require.Len(t, id, ice.TotalLength)
			assert.True(t, ice.Validate(id).Valid, "generated: %s", id)
		}
	})

	t.Run("pairwise distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := ice.Generate()
			assert.False(t, seen[id], "duplicate generated value: %s", id)
			seen[id] = true
		}
	})
}

func TestGenerateFormatted(t *testing.T) {
	out, err := ice.GenerateFormatted(ice.WithSeparator('-'), ice.WithPrefix())
	require.NoError(t, err)

	digits := ice.Unformat(out)
	assert.True(t, ice.Validate(digits).Valid, "formatted: %s", out)
	assert.Equal(t, "ICE-", out[:4])
}
