package repository

import (
	"context"
	"errors"
	"time"

	"github.com/minseoh/task-tracker/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a uniqueness
	// constraint. The store is the authority on uniqueness; callers treat
	// this as the conflict signal even when their pre-check passed.
	ErrDuplicate = errors.New("duplicate")
)

// AccountRepository defines the durable operations of the credential store.
type AccountRepository interface {
	// FindByEmail returns the account owning the email, ErrNotFound otherwise.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindForRegistration returns the accounts matching the email and the
	// username in a single lookup. Either result may be nil. The two results
	// may be the same row.
	FindForRegistration(ctx context.Context, email, username string) (byEmail, byUsername *entity.Account, err error)

	// Create inserts a new unverified account and fills ID/CreatedAt/UpdatedAt.
	// Returns ErrDuplicate when the email is already taken.
	Create(ctx context.Context, a *entity.Account) error

	// RefreshPending overwrites username, password hash, code and expiry of an
	// unverified account in place. Returns ErrNotFound when the row is absent
	// or no longer unverified.
	RefreshPending(ctx context.Context, id, username, passwordHash, code string, expires time.Time) (*entity.Account, error)

	// MarkVerified promotes the account to verified and clears the code pair.
	MarkVerified(ctx context.Context, id string) (*entity.Account, error)
}
