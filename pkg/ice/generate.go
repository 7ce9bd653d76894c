package ice

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dmitrymomot/moroccokit/pkg/mod97"
)

// Generate synthesizes a structurally valid ICE: a random 13-digit
// company+establishment payload with its computed control appended.
// Every generated value passes Validate.
func Generate() string {
	payload := randomDigits(payloadLength)
	return payload + mod97.Checksum(payload)
}

// GenerateFormatted synthesizes a valid ICE and renders it with the
// given format options.
func GenerateFormatted(opts ...FormatOption) (string, error) {
	return Format(Generate(), opts...)
}

func randomDigits(n int) string {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken, which is not a recoverable condition here.
		panic(fmt.Sprintf("ice: generate random digits: %v", err))
	}
	return fmt.Sprintf("%0*d", n, v)
}
