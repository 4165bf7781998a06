package entity

import (
	"time"
)

// Account is the aggregate root for the identity domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
//
// VerificationCode and VerificationExpires are set together while the
// account is pending email verification and cleared together when the
// account is promoted to verified; a verified account never carries a code.
type Account struct {
	ID                  string
	Username            string
	Email               string
	PasswordHash        string
	EmailVerified       bool
	VerificationCode    *string
	VerificationExpires *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Pending reports whether the account has an outstanding verification code.
func (a *Account) Pending() bool {
	return !a.EmailVerified && a.VerificationCode != nil && a.VerificationExpires != nil
}
