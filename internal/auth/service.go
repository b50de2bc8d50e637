// Package auth implements registration, password authentication, and the
// signed-token session scheme used to gate every protected request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Rajamurugan09/ai-course-builder/internal/models"
	"github.com/Rajamurugan09/ai-course-builder/internal/store"
)

// Service holds the process-wide signing key and the user store. The key is
// set once at construction and never rotated.
type Service struct {
	users    store.UserStore
	secret   []byte
	method   jwt.SigningMethod
	tokenTTL time.Duration
}

func NewService(users store.UserStore, secret, algorithm string, tokenTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}

	var method jwt.SigningMethod
	switch algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}

	return &Service{
		users:    users,
		secret:   []byte(secret),
		method:   method,
		tokenTTL: tokenTTL,
	}, nil
}

// Register stores a new user with a salted hash of password. The raw password
// is never persisted.
func (s *Service) Register(ctx context.Context, username, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.CreateUser(ctx, username, hash)
}

// Authenticate verifies username/password and returns the user record.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, hash, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !checkPassword(hash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
