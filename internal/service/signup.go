package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"golang.org/x/crypto/bcrypt"

	"github.com/jask/signup/internal/audit"
	"github.com/jask/signup/internal/database"
	"github.com/jask/signup/internal/database/repository"
	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
)

var (
	// ErrInvalidCredentials is returned when either field fails validation.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when the email already has an account.
	ErrEmailTaken = repository.ErrEmailTaken
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

	errNoAccounts = errors.New("signup: accounts repo not configured")
)

// SignupService turns an accepted submit request into a stored account.
type SignupService struct {
	Accounts *repository.AccountRepo
	// BcryptCost defaults to bcrypt.DefaultCost when zero.
	BcryptCost int
}

// Register validates creds again, hashes the password and stores the account.
// The email is stored lower-cased.
func (s *SignupService) Register(ctx context.Context, creds form.Credentials) (repository.Account, error) {
	acct, err := s.register(ctx, creds)
	if err != nil {
		capitan.Emit(ctx, audit.AccountRejected,
			audit.KeyEmail.Field(creds.Email),
			audit.KeyError.Field(err.Error()),
		)
		return repository.Account{}, err
	}
	capitan.Emit(ctx, audit.AccountCreated,
		audit.KeyAccountID.Field(acct.ID),
		audit.KeyEmail.Field(acct.Email),
	)
	return acct, nil
}

func (s *SignupService) register(ctx context.Context, creds form.Credentials) (repository.Account, error) {
	if s.Accounts == nil {
		return repository.Account{}, errNoAccounts
	}
	if !field.Validate(field.KindEmail, creds.Email).Valid() || !field.Validate(field.KindPassword, creds.Password).Valid() {
		return repository.Account{}, ErrInvalidCredentials
	}

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return repository.Account{}, ErrPasswordTooLong
		}
		return repository.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acct := repository.Account{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(creds.Email),
		PasswordHash: string(hash),
		CreatedAt:    database.Now(),
	}
	if err := s.Accounts.Create(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return repository.Account{}, ErrEmailTaken
		}
		return repository.Account{}, fmt.Errorf("create account: %w", err)
	}
	return acct, nil
}

// Authenticate reports whether password matches the stored hash for email.
func (s *SignupService) Authenticate(ctx context.Context, email, password string) (bool, error) {
	if s.Accounts == nil {
		return false, errNoAccounts
	}
	acct, err := s.Accounts.ByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return false, fmt.Errorf("lookup account: %w", err)
	}
	if acct == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) == nil, nil
}
