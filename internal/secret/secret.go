// internal/secret/secret.go
//
// Selection of the hidden target number.
//
// Responsibilities:
//   - Define the fixed guess range (Min..=Max, inclusive both ends).
//   - Provide a Source abstraction for uniform integers over a closed range.
//   - Supply a crypto/rand backed Source and a fixed Source for tests.
//
// The range is not configurable; callers always go through Pick.

package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	Min uint32 = 1
	Max uint32 = 100
)

// Source yields integers uniformly distributed over [lo, hi].
type Source interface {
	IntRange(lo, hi uint32) (uint32, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// NewCryptoSource returns the default Source used by the binary.
func NewCryptoSource() CryptoSource { return CryptoSource{} }

// IntRange returns a cryptographically random value in [lo, hi].
func (CryptoSource) IntRange(lo, hi uint32) (uint32, error) {
	if hi < lo {
		return 0, errors.New("secret: empty range")
	}
	span := big.NewInt(int64(hi) - int64(lo) + 1)
	nBig, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("secret: read random: %w", err)
	}
	return lo + uint32(nBig.Int64()), nil
}

// Fixed is a Source that always yields the same value.
// Values outside the requested range are rejected by IntRange.
type Fixed uint32

func (f Fixed) IntRange(lo, hi uint32) (uint32, error) {
	v := uint32(f)
	if v < lo || v > hi {
		return 0, fmt.Errorf("secret: fixed value %d outside %d..=%d", v, lo, hi)
	}
	return v, nil
}

// Pick draws a target in Min..=Max from src.
func Pick(src Source) (uint32, error) {
	if src == nil {
		src = NewCryptoSource()
	}
	return src.IntRange(Min, Max)
}
