package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo       user.Repository
	bcryptCost int
	logger     *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, bcryptCost int, log *logger.Logger) user.Service {
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// Authenticate verifies a username/password pair and returns the user.
// Unknown usernames and wrong passwords report the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}

	return u, nil
}

// Register creates a new user with a hashed password
func (s *UserService) Register(ctx context.Context, username, password, firstName, lastName string) (*user.User, error) {
	username = strings.ToLower(username)

	if existing, err := s.repo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, errors.Conflict("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
	}).Info("User registered")

	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves the full roster
func (s *UserService) List(ctx context.Context) ([]*user.User, error) {
	return s.repo.List(ctx)
}
