// Package security contains the signed session token kept in the browser
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "discord-web"

var ErrInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	Profile model.Profile `json:"profile"`
	jwt.RegisteredClaims
}

// Sessions signs and verifies the session token holding the logged in
// user's Discord profile
type Sessions struct {
	secret []byte
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, maxAge time.Duration, secure bool) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		maxAge: maxAge,
		secure: secure,
		now:    time.Now,
	}
}

func (s *Sessions) MaxAge() time.Duration {
	return s.maxAge
}

// Secure reports whether the cookie should only be sent over HTTPS
func (s *Sessions) Secure() bool {
	return s.secure
}

func (s *Sessions) Issue(p *model.Profile) (string, error) {
	now := s.now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Profile: *p,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session, %w", err)
	}

	return signed, nil
}

func (s *Sessions) Parse(token string) (*model.Profile, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInvalidSession, err)
	}

	if claims.Subject != claims.Profile.ID {
		return nil, fmt.Errorf("%w, subject mismatch", ErrInvalidSession)
	}

	if err := claims.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInvalidSession, err)
	}

	return &claims.Profile, nil
}
