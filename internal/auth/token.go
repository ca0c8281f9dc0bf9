package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
)

// Verification outcomes. Every parse or signature failure collapses into
// ErrInvalidToken so the response never explains what was wrong with an
// attacker-supplied token; only expiry is distinguished, and only for logging.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Principal is the authenticated identity attached to a request. It lives for
// one request and is never persisted.
type Principal struct {
	SubjectID string
	Role      domain.Role
}

// Claims describes the JWT payload: subject id and role plus the registered
// time claims.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed HS256 tokens. The secret is loaded
// once at startup and is read-only afterwards.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. Config validation guarantees a non-empty
// secret and positive ttl before this is reached.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate builds and signs a token embedding the subject id and role.
func (tm *TokenManager) Generate(subjectID string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and recovers the principal embedded at
// issuance. The role check uses the claim as-is: a stored role change does
// not affect tokens already in flight.
func (tm *TokenManager) Verify(tokenStr string) (*Principal, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Principal{SubjectID: claims.Subject, Role: claims.Role}, nil
}
