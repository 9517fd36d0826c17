// Package random provides uniform random selection backed by crypto/rand.
//
// A statistical generator would make the computer's move predictable and
// defeat the commitment protocol, so everything here draws from the system
// entropy source.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Pick returns a uniform index in [0, n).
func Pick(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("pick: n must be positive, got %d", n)
	}

	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random index: %w", err)
	}
	return int(v.Int64()), nil
}
