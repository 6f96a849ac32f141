// Package services contains server-side business logic. This file implements
// AuthService, which orchestrates the hasher, the user store and the token
// issuer behind register, login and token checks.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/cryptox"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
)

// LoginResult is what a login attempt produces. Authenticated=false with a
// nil error is a successful operation whose outcome is "credentials did not
// match"; only missing input or an unknown user yields an error.
type LoginResult struct {
	Authenticated bool
	Token         string
}

// AuthService provides the authentication operations surfaced to the
// transport layer:
// - Register: create users
// - Login: verify credentials and mint a token
// - CheckAuth: verify a presented token and resolve its username
type AuthService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using the repository and server
// config. The signing secret is fixed for the lifetime of the service.
func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username and password.
// The password is hashed before it is stored; the plaintext never leaves
// this method. Returns common.ErrorMissingFields when either input is
// empty and common.ErrorAlreadyExists when the username is taken.
func (s *AuthService) Register(ctx context.Context, username string, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorMissingFields
	}

	// uniqueness check; the repository re-checks atomically on insert
	_, err := s.repo.GetUserByName(ctx, username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:             uuid.NewString(),
		UserName:       username,
		HashedPassword: cryptox.HashPassword(password),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return created, nil
}

// Login verifies the password against the stored hash. On a match it mints
// a token, stores it on the record (last write wins) and returns it. On a
// mismatch it returns Authenticated=false and no token, with a nil error.
func (s *AuthService) Login(ctx context.Context, username string, password string) (*LoginResult, error) {
	if password == "" {
		return nil, common.ErrorMissingPassword
	}

	user, err := s.repo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnknownUser
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.HashedPassword) {
		return &LoginResult{Authenticated: false}, nil
	}

	token, err := auth.GenerateToken(username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repo.SetToken(ctx, username, token); err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Authenticated: true, Token: token}, nil
}

// CheckAuth verifies a presented token and returns the username it was
// issued for. An absent token, a bad signature, an expired token and an
// empty resolved username are all reported as common.ErrorUnauthorized;
// callers cannot tell the cases apart.
func (s *AuthService) CheckAuth(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}

	if !auth.ValidateToken(token, s.jwtSecret) {
		return "", common.ErrorUnauthorized
	}

	username := s.GetUsernameForToken(token)
	if username == "" {
		return "", common.ErrorUnauthorized
	}

	return username, nil
}

// GetUsernameForToken resolves the username purely from the token's signed
// payload; the store is never consulted. Returns the empty string for any
// token that would not validate.
func (s *AuthService) GetUsernameForToken(token string) string {
	username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return ""
	}
	return username
}
