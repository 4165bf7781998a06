package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
)

const uniqueViolation = "23505"

const accountColumns = `id, username, email, password_hash, email_verified,
	       verification_code, verification_expires, created_at, updated_at`

// AccountRepository is the pgx-backed credential store. Uniqueness of emails
// (all accounts) and usernames (verified accounts) is enforced by indexes;
// a violated constraint surfaces as repository.ErrDuplicate.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	a := &entity.Account{}
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.EmailVerified,
		&a.VerificationCode, &a.VerificationExpires, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanAccount(row)
}

func (r *AccountRepository) FindForRegistration(ctx context.Context, email, username string) (*entity.Account, *entity.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM users
		WHERE email = $1 OR username = $2
	`, email, username)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var byEmail, byUsername *entity.Account
	for rows.Next() {
		a := &entity.Account{}
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.EmailVerified,
			&a.VerificationCode, &a.VerificationExpires, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, nil, err
		}
		if a.Email == email {
			byEmail = a
		}
		if a.Username == username {
			byUsername = a
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return byEmail, byUsername, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, email_verified,
		                   verification_code, verification_expires)
		VALUES ($1, $2, $3, false, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.Username, a.Email, a.PasswordHash, a.VerificationCode, a.VerificationExpires)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AccountRepository) RefreshPending(ctx context.Context, id, username, passwordHash, code string, expires time.Time) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET username = $1,
		    password_hash = $2,
		    verification_code = $3,
		    verification_expires = $4,
		    updated_at = now()
		WHERE id = $5 AND email_verified = false
		RETURNING `+accountColumns+`
	`, username, passwordHash, code, expires, id)
	return scanAccount(row)
}

func (r *AccountRepository) MarkVerified(ctx context.Context, id string) (*entity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email_verified = true,
		    verification_code = NULL,
		    verification_expires = NULL,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns+`
	`, id)
	a, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
