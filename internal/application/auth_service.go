package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
	"github.com/minseoh/task-tracker/pkg/helpers"
	"github.com/minseoh/task-tracker/pkg/mailer"
)

// AuthService implements the account identity lifecycle: registration with
// code-based email verification, re-issuance for abandoned signups, and
// credential login with session token issuance.
type AuthService struct {
	Accounts repository.AccountRepository
	Tokens   *helpers.TokenManager
	Mail     mailer.Dispatcher
	Logger   *logrus.Logger
	CodeTTL  time.Duration
}

func NewAuthService(accounts repository.AccountRepository, tokens *helpers.TokenManager, mail mailer.Dispatcher, logger *logrus.Logger, codeTTL time.Duration) *AuthService {
	return &AuthService{
		Accounts: accounts,
		Tokens:   tokens,
		Mail:     mail,
		Logger:   logger,
		CodeTTL:  codeTTL,
	}
}

// AccountSummary is the public projection of an account. It never carries
// the password hash or the verification code.
type AccountSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func summarize(a *entity.Account) *AccountSummary {
	return &AccountSummary{ID: a.ID, Username: a.Username, Email: a.Email}
}

// Register creates a pending account, or refreshes an existing pending one
// for the same email (re-issuance), and dispatches the verification code.
// A dispatch failure is surfaced as ErrMailDispatch; the stored row remains
// in the recoverable pending state so the client can simply register again.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AccountSummary, error) {
	byEmail, byUsername, err := s.Accounts.FindForRegistration(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if byEmail != nil && byEmail.EmailVerified {
		return nil, ErrEmailTaken
	}
	// A username collision only blocks when the email does not already own a
	// pending row; re-registering a stalled signup may keep its username.
	if byEmail == nil && byUsername != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	code, err := helpers.GenVerificationCode()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(s.CodeTTL)

	var acct *entity.Account
	if byEmail != nil {
		acct, err = s.Accounts.RefreshPending(ctx, byEmail.ID, username, hash, code, expires)
		if errors.Is(err, repository.ErrNotFound) {
			// The pending row was verified between lookup and update.
			return nil, ErrEmailTaken
		}
	} else {
		acct = &entity.Account{
			Username:            username,
			Email:               email,
			PasswordHash:        hash,
			VerificationCode:    &code,
			VerificationExpires: &expires,
		}
		err = s.Accounts.Create(ctx, acct)
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the insert race for this email; the index is authoritative.
			return nil, ErrEmailTaken
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.Mail.SendVerificationCode(ctx, acct.Email, code, expires); err != nil {
		s.Logger.WithError(err).WithField("email", acct.Email).Error("verification email dispatch failed")
		return nil, ErrMailDispatch
	}

	return summarize(acct), nil
}

// VerifyEmail consumes a submitted code, promotes the account to verified
// exactly once, and issues a session token. Failed attempts never mutate
// the store.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (string, *AccountSummary, error) {
	a, err := s.Accounts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrAccountNotFound
	}
	if err != nil {
		return "", nil, err
	}
	if a.EmailVerified {
		return "", nil, ErrAlreadyVerified
	}
	if !a.Pending() {
		return "", nil, ErrNoPendingCode
	}
	if time.Now().After(*a.VerificationExpires) {
		return "", nil, ErrCodeExpired
	}
	if *a.VerificationCode != code {
		return "", nil, ErrCodeInvalid
	}

	verified, err := s.Accounts.MarkVerified(ctx, a.ID)
	if err != nil {
		return "", nil, err
	}

	token, _, err := s.Tokens.Generate(verified.ID, verified.Username)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", verified.ID).Error("token generation failed")
		return "", nil, err
	}
	return token, summarize(verified), nil
}

// Login validates credentials against a verified account and issues a
// session token. Unknown email and wrong password are indistinguishable to
// the caller; an unverified account is a distinct failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *AccountSummary, error) {
	a, err := s.Accounts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !a.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}
	if !helpers.CompareHashAndPassword(a.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Generate(a.ID, a.Username)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", a.ID).Error("token generation failed")
		return "", nil, err
	}
	return token, summarize(a), nil
}
