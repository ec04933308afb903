package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer identifies access tokens minted by this service.
const tokenIssuer = "arenaduna-booking"

// Claims is the access-token payload for a booking account. The phone number
// is embedded so the booking endpoints can match the account against calendar
// events without a store lookup.
type Claims struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the account identifier the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// JWTManager issues and verifies HS256 access tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager signing with secret and issuing tokens
// valid for ttl.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueAccessToken signs a token carrying the account's identity claims.
func (m *JWTManager) IssueAccessToken(userID, email, phone string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		Email: email,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns its claims. Tokens signed with anything
// other than HMAC, expired tokens and tokens from another issuer are all
// rejected.
func (m *JWTManager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to verify access token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return claims, nil
}
