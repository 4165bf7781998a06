package helpers

import (
	"crypto/rand"
	"fmt"
)

// VerificationCodeLength is the fixed width of email verification codes.
const VerificationCodeLength = 6

// GenVerificationCode generates a secure random 6-digit verification code
// as a zero-padded string.
func GenVerificationCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	code := n % 1000000
	return fmt.Sprintf("%06d", code), nil
}
