// Package auth implements credential hashing and bearer token issuance for
// the server.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued token.
const TokenTTL = time.Hour

// Claims is the signed payload: the user's id and role plus the registered
// iat/exp timestamps.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Role   string `json:"role"`
}

// IssuedAtTime returns the issuance time, or zero if absent.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns the expiry, or zero if absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenIssuer signs and verifies HS256 tokens with a key fixed at construction.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secretKey []byte) *TokenIssuer {
	key := make([]byte, len(secretKey))
	copy(key, secretKey)
	return &TokenIssuer{secret: key, now: time.Now}
}

// Issue signs a token for the user, valid for TokenTTL from now.
func (i *TokenIssuer) Issue(userID int64, role string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID,
		Role:   role,
	})

	return token.SignedString(i.secret)
}

// Verify checks signature and expiry. Expired tokens yield
// common.ErrTokenExpired; anything else that fails yields common.ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Role == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
