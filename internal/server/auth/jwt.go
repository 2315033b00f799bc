// Package auth issues and validates the HS256 access tokens handed to
// clients. It holds no state beyond its configuration.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload. Standard claims carry sub, iss, aud,
// iat and exp; the rest describe the user.
type Claims struct {
	jwt.RegisteredClaims
	Email             string `json:"email,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	GivenName         string `json:"given_name,omitempty"`
	FamilyName        string `json:"family_name,omitempty"`
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenConfig is what the codec needs from server configuration.
type TokenConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	Lifetime  time.Duration
}

// TokenCodec signs and verifies access tokens against one secret, issuer and
// audience. The clock is injected so expiry is testable.
type TokenCodec struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
}

func NewTokenCodec(cfg TokenConfig, now func() time.Time) *TokenCodec {
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{
		secret:   []byte(cfg.SecretKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: cfg.Lifetime,
		now:      now,
	}
}

// ExpirationSeconds is the access token lifetime reported to clients.
func (c *TokenCodec) ExpirationSeconds() int64 {
	return int64(c.lifetime / time.Second)
}

// Issue signs a token for user valid from now for the configured lifetime.
func (c *TokenCodec) Issue(user *models.User) (string, error) {
	now := c.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
		Email:             user.Email,
		PreferredUsername: user.UserName,
		GivenName:         user.FirstName,
		FamilyName:        user.LastName,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// ValidateCurrent verifies signature, algorithm, issuer, audience and expiry.
func (c *TokenCodec) ValidateCurrent(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, mapError(err)
	}
	return claims, nil
}

// ReadClaimsIgnoringExpiry verifies everything ValidateCurrent does except
// time-based claims. It backs the refresh flow, where the access token is
// expected to be stale.
func (c *TokenCodec) ReadClaimsIgnoringExpiry(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, mapError(err)
	}

	if claims.Issuer != c.issuer || !slices.Contains(claims.Audience, c.audience) {
		return nil, common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, common.ErrTokenMalformed
	}
	return claims, nil
}

func (c *TokenCodec) keyFunc(t *jwt.Token) (any, error) {
	return c.secret, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenBadSignature
	default:
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
}
