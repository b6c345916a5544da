package services

import (
	"context"
	"errors"

	"github.com/dealflow/apiserver/internal/store"
	"github.com/dealflow/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// RegisterParams carries the fields needed to create an account.
type RegisterParams struct {
	Username string
	Password string
	Email    string
	Name     string
	UserType string
}

// BootstrapAccount is a fixed account ensured at first initialization,
// for demonstration and testing access.
type BootstrapAccount struct {
	Username string
	Password string
	Email    string
	Name     string
	UserType string
}

// UserService encapsulates credential use-cases: registration,
// verification, and bootstrap seeding.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
// The duplicate check and the insert are not covered by a single
// transaction; the users.username unique constraint is the backstop under
// concurrent registrations.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (types.User, error) {
	if _, err := s.repo.GetByUsername(ctx, params.Username); err == nil {
		return types.User{}, ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Username:     params.Username,
		Email:        params.Email,
		Name:         params.Name,
		UserType:     params.UserType,
		PasswordHash: string(hashed),
	})
}

// Authenticate verifies a username/password pair and returns the account.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Seed ensures the given accounts exist, keyed by username. Existing
// accounts are left untouched, so running it on every start is safe.
func (s *UserService) Seed(ctx context.Context, accounts []BootstrapAccount) error {
	for _, account := range accounts {
		_, err := s.Register(ctx, RegisterParams{
			Username: account.Username,
			Password: account.Password,
			Email:    account.Email,
			Name:     account.Name,
			UserType: account.UserType,
		})
		if err != nil && !errors.Is(err, ErrDuplicateUsername) {
			return err
		}
	}
	return nil
}
