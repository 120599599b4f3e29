// Package auth issues and verifies the stateless bearer tokens handed out at login.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType separates short-lived access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// ErrInvalidToken is returned for any token that must not be accepted.
var ErrInvalidToken = errors.New("token is invalid or expired")

// Claims are the JWT claims carried by every token.
type Claims struct {
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenIssuer signs and verifies HS256 tokens bound to a user id.
type TokenIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair mints a fresh access and refresh token for userID.
func (t *TokenIssuer) IssuePair(userID uint) (TokenPair, error) {
	access, err := t.issue(userID, AccessToken, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.issue(userID, RefreshToken, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess mints a new access token, used by the refresh flow.
func (t *TokenIssuer) IssueAccess(userID uint) (string, error) {
	return t.issue(userID, AccessToken, t.accessTTL)
}

func (t *TokenIssuer) issue(userID uint, typ TokenType, ttl time.Duration) (string, error) {
	now := t.now()
	claims := Claims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Verify checks signature, issuer, expiry and type, and returns the user id.
func (t *TokenIssuer) Verify(token string, want TokenType) (uint, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != want {
		return 0, fmt.Errorf("%w: expected %s token", ErrInvalidToken, want)
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return uint(id), nil
}
