// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and verification of signed
// session tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mp28jam28/board-auth/internal/common"
	"github.com/mp28jam28/board-auth/internal/server/auth"
	"github.com/mp28jam28/board-auth/internal/server/config"
	"github.com/mp28jam28/board-auth/internal/server/models"
	"github.com/mp28jam28/board-auth/internal/server/users"
)

// RegisterRequest carries the fields of a registration.
// Username, Email, Name and Password are required; Department and Role are
// optional opaque attributes copied into the record as-is.
type RegisterRequest struct {
	Username   string
	Email      string
	Name       string
	Password   string
	Department string
	Role       string
}

// UserService provides the three authentication operations:
//   - Register: create a user with a hashed password
//   - Login: verify credentials and mint a session token
//   - VerifyToken: check a previously issued token and recover its claims
//
// The service is stateless per request; the signing secret and store handle
// are read-only after construction.
type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService from the user store and server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates a new user record. The existence lookup gives the common
// case a fast, friendly error; the store's atomic create is what actually
// closes the race between two concurrent registrations of the same name.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Name == "" || req.Password == "" {
		return common.ErrorMissingField
	}

	_, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil {
		return common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Department:   req.Department,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return nil
}

// Login verifies the credentials and returns a signed session token. An
// unknown username and a wrong password both yield common.ErrorUnauthorized
// so the response cannot be used to enumerate users.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorMissingField
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(&auth.Claims{
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		Department: user.Department,
		Role:       user.Role,
	}, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// VerifyToken checks the signature and expiration of a session token and
// returns the claims embedded in it.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, common.ErrorMissingField
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
