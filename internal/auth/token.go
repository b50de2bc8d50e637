package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Rajamurugan09/ai-course-builder/internal/models"
)

// Principal is the authenticated identity reconstructed from token claims.
type Principal struct {
	UserID   int64
	Username string
}

type claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// MintToken produces a signed bearer token for user, valid for the service's
// configured lifetime. Validation needs only the token and the signing key,
// no store lookup.
func (s *Service) MintToken(user models.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	token := jwt.NewWithClaims(s.method, claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Authorize validates a bearer token and returns the principal it asserts.
// Expired tokens yield ErrTokenExpired; anything else wrong with the token
// (bad signature, wrong algorithm, malformed, missing claims) yields
// ErrInvalidToken.
func (s *Service) Authorize(tokenString string) (Principal, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrTokenExpired
		}
		return Principal{}, ErrInvalidToken
	}
	if !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	if parsed.Subject == "" || parsed.UserID == 0 {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: parsed.UserID, Username: parsed.Subject}, nil
}
