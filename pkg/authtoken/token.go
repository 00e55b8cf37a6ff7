// Package authtoken issues and verifies the stateless HS256 tokens that
// guard the API. Verification needs only the shared secret and the token
// itself; there is no session store.
package authtoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = time.Hour

// ErrInvalidToken covers every verification failure. Malformed, tampered,
// expired and future-dated tokens all look the same to callers so the
// response leaks nothing about which check failed.
var ErrInvalidToken = errors.New("authtoken: invalid or expired token")

// Claims carry the authenticated subject.
type Claims struct {
	UserID uint     `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide symmetric secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New builds a Service with the default validity window and wall clock.
func New(secret []byte) *Service {
	return &Service{secret: secret, ttl: DefaultTTL, now: time.Now}
}

// NewWithClock lets tests pin the clock and validity window.
func NewWithClock(secret []byte, ttl time.Duration, now func() time.Time) *Service {
	return &Service{secret: secret, ttl: ttl, now: now}
}

// Issue creates a signed token for the subject, valid from now for the
// configured window.
func (s *Service) Issue(userID uint, email string, roles []string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify recomputes the signature, checks structure and time bounds and
// returns the embedded claims. Any failure collapses to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
