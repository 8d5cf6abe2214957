package pkg

import (
	cryptoRand "crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const anonymousEmailDigits = 12

// AnonymousEmail mints a placeholder address for donations that arrive without
// a session, so every donation row stays attached to a user record.
func AnonymousEmail() (string, error) {
	suffix, err := randDigits(anonymousEmailDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("anonymous_%s@equilearn.org", suffix), nil
}

func randDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + x.Int64()))
	}
	return b.String(), nil
}
