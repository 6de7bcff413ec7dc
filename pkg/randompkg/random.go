// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const digits = "0123456789"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Int64Between generates a random integer between min and max.
func Int64Between(min, max int64) int64 {
	return min + Intn(int(max-min))
}

// Snowflake generates a random 18-digit id in the format Discord uses.
func Snowflake() string {
	var sb strings.Builder

	_ = sb.WriteByte(digits[1+Intn(9)]) // no leading zero

	for i := 0; i < 17; i++ {
		_ = sb.WriteByte(digits[Intn(10)]) // The returned err is always nil.
	}

	return sb.String()
}
