package rib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/moroccokit/pkg/rib"
)

// Vectors with keys computed from the chunked MOD 97 fold; the first one
// is the account embedded in a published Moroccan IBAN sample.
var validRIBs = []string{
	"007108000779200030312071",
	"007000000000000000000128",
	"011780000011223344556679",
	"013000011112222333344430",
	"101023456789012345678933",
	"230111222333444555666727",
}

func TestIsValid(t *testing.T) {
	t.Run("valid accounts", func(t *testing.T) {
		for _, v := range validRIBs {
			assert.True(t, rib.IsValid(v), "rib: %s", v)
		}
	})

	t.Run("accepts separators", func(t *testing.T) {
		assert.True(t, rib.IsValid("007 108 0007792000303120 71"))
		assert.True(t, rib.IsValid("007-108-0007792000303120-71"))
	})

	t.Run("key changed invalidates", func(t *testing.T) {
		for _, v := range validRIBs {
			tampered := v[:22] + flipDigits(v[22:])
			assert.False(t, rib.IsValid(tampered), "rib: %s", tampered)
		}
	})

	t.Run("transposed digits invalidate", func(t *testing.T) {
		v := "007108000779200030312071"
		// Swap two adjacent distinct digits inside the account number.
		tampered := v[:8] + string(v[9]) + string(v[8]) + v[10:]
		require.NotEqual(t, v, tampered)
		assert.False(t, rib.IsValid(tampered))
	})

	t.Run("wrong length", func(t *testing.T) {
		assert.False(t, rib.IsValid("00710800077920003031207"))   // one short
		assert.False(t, rib.IsValid("0071080007792000303120711")) // one long
		assert.False(t, rib.IsValid(""))
	})

	t.Run("unknown bank", func(t *testing.T) {
		assert.False(t, rib.IsValid("999108000779200030312071"))
	})
}

func TestParse(t *testing.T) {
	t.Run("component breakdown and bank metadata", func(t *testing.T) {
		d, err := rib.Parse("007108000779200030312071")
		require.NoError(t, err)

		assert.Equal(t, "007", d.Components.BankCode)
		assert.Equal(t, "108", d.Components.BranchCode)
		assert.Equal(t, "0007792000303120", d.Components.AccountNumber)
		assert.Equal(t, "71", d.Components.Key)
		assert.Equal(t, d.Sanitized, d.Components.Join())

		assert.Equal(t, "Attijariwafa Bank", d.Bank.Name)
		assert.Equal(t, "BCMAMAMC", d.Bank.SWIFT)
		assert.True(t, d.Bank.Active)
	})

	t.Run("registered branch is resolved", func(t *testing.T) {
		d, err := rib.Parse("101023456789012345678933")
		require.NoError(t, err)
		assert.Equal(t, "Banque Populaire", d.Bank.Name)
		assert.Nil(t, d.Branch, "branch 023 is not registered")

		// 101 010 ... — Casablanca branch.
		valid, err := rib.CalculateKey("1010102345678901234567")
		require.NoError(t, err)
		d, err = rib.Parse("1010102345678901234567" + valid)
		require.NoError(t, err)
		require.NotNil(t, d.Branch)
		assert.Equal(t, "BCPOMAMCCAS", d.Branch.SWIFT)
	})

	t.Run("typed errors per stage", func(t *testing.T) {
		_, err := rib.Parse("0071")
		assert.ErrorIs(t, err, rib.ErrInvalidLength)

		_, err = rib.Parse("00710800077920003031207A")
		assert.ErrorIs(t, err, rib.ErrNonNumeric)

		_, err = rib.Parse("999108000779200030312071")
		assert.ErrorIs(t, err, rib.ErrUnknownBank)

		_, err = rib.Parse("007108000779200030312072")
		assert.ErrorIs(t, err, rib.ErrInvalidKey)
		assert.Contains(t, err.Error(), "computed 71")
		assert.Contains(t, err.Error(), "provided 72")
	})

	t.Run("length one off is a length error, not a key error", func(t *testing.T) {
		_, err := rib.Parse("00710800077920003031207")
		assert.ErrorIs(t, err, rib.ErrInvalidLength)
		assert.NotErrorIs(t, err, rib.ErrInvalidKey)
	})
}

func TestCalculateKey(t *testing.T) {
	t.Run("recomputes embedded keys", func(t *testing.T) {
		for _, v := range validRIBs {
			key, err := rib.CalculateKey(v[:22])
			require.NoError(t, err)
			assert.Equal(t, v[22:], key, "rib: %s", v)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := rib.CalculateKey("0071080007792000303120")
		require.NoError(t, err)
		for range 5 {
			again, err := rib.CalculateKey("0071080007792000303120")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("rejects wrong payload width", func(t *testing.T) {
		_, err := rib.CalculateKey("007108")
		assert.ErrorIs(t, err, rib.ErrInvalidPayloadLength)

		_, err = rib.CalculateKey("007108000779200030312071")
		assert.ErrorIs(t, err, rib.ErrInvalidPayloadLength)
	})
}

func TestLookupBank(t *testing.T) {
	b, ok := rib.LookupBank("007")
	require.True(t, ok)
	assert.Equal(t, "Attijariwafa Bank", b.Name)

	_, ok = rib.LookupBank("999")
	assert.False(t, ok)

	assert.NotEmpty(t, rib.BankCodes())
}

// flipDigits returns a different 2-digit string than the input.
func flipDigits(key string) string {
	if key == "00" {
		return "11"
	}
	return "00"
}
