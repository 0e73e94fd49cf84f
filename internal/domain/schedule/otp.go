package schedule

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// CodeTTL is how long a verification code stays valid after issue.
const CodeTTL = 5 * time.Minute

const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateCode draws a uniform random 6-digit verification code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}

// CodeExpired reports whether an issued code is past its window.
func CodeExpired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.Before(now)
}
