package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/moroccokit/pkg/iban"
)

func TestIsValid(t *testing.T) {
	t.Run("valid with and without spacing", func(t *testing.T) {
		for _, v := range []string{
			"MA64 0071 0800 0779 2000 3031 2071",
			"MA64007108000779200030312071",
			"ma64-0071-0800-0779-2000-3031-2071",
		} {
			assert.True(t, iban.IsValid(v), "iban: %q", v)
		}
	})

	t.Run("transposed digit invalidates", func(t *testing.T) {
		assert.False(t, iban.IsValid("MA64 0071 0800 0779 2000 3031 2017"))
		assert.False(t, iban.IsValid("MA64 0017 0800 0779 2000 3031 2071"))
	})

	t.Run("wrong check digits invalidate", func(t *testing.T) {
		assert.False(t, iban.IsValid("MA65007108000779200030312071"))
	})

	t.Run("wrong country, length or alphabet", func(t *testing.T) {
		assert.False(t, iban.IsValid("FR64007108000779200030312071"))
		assert.False(t, iban.IsValid("MA640071080007792000303120"))
		assert.False(t, iban.IsValid("MA6400710800077920003031207A"))
		assert.False(t, iban.IsValid(""))
	})
}

func TestValidateErrors(t *testing.T) {
	assert.ErrorIs(t, iban.Validate("MA64"), iban.ErrInvalidLength)
	assert.ErrorIs(t, iban.Validate("FR64007108000779200030312071"), iban.ErrInvalidCountry)
	assert.ErrorIs(t, iban.Validate("MA6400710800077920003031207A"), iban.ErrInvalidBBAN)
	assert.ErrorIs(t, iban.Validate("MA65007108000779200030312071"), iban.ErrInvalidCheckDigits)
	assert.NoError(t, iban.Validate("MA64007108000779200030312071"))
}

func TestCalculateCheckDigits(t *testing.T) {
	check, err := iban.CalculateCheckDigits("007108000779200030312071")
	require.NoError(t, err)
	assert.Equal(t, "64", check)

	_, err = iban.CalculateCheckDigits("0071")
	assert.ErrorIs(t, err, iban.ErrInvalidBBAN)
}

func TestFromRIB(t *testing.T) {
	t.Run("composes a valid iban", func(t *testing.T) {
		out, err := iban.FromRIB("007108000779200030312071")
		require.NoError(t, err)
		assert.Equal(t, "MA64007108000779200030312071", out)
		assert.True(t, iban.IsValid(out))
	})

	t.Run("rejects an invalid rib", func(t *testing.T) {
		_, err := iban.FromRIB("007108000779200030312072")
		assert.ErrorIs(t, err, iban.ErrInvalidRIB)
	})
}

func TestRIBExtraction(t *testing.T) {
	out, err := iban.RIB("MA64 0071 0800 0779 2000 3031 2071")
	require.NoError(t, err)
	assert.Equal(t, "007108000779200030312071", out)

	_, err = iban.RIB("MA65007108000779200030312071")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out, err := iban.Format("MA64007108000779200030312071")
	require.NoError(t, err)
	assert.Equal(t, "MA64 0071 0800 0779 2000 3031 2071", out)

	_, err = iban.Format("MA64")
	assert.ErrorIs(t, err, iban.ErrInvalidLength)
}
