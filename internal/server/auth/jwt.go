// Package auth implements the credential boundary of the server: bcrypt
// password hashing and stateless HS256 session tokens.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avolkov/qanda/internal/common"
)

// Claims is the claim set carried by a session token: the registered claims
// plus the subject's numeric id and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// TokenCodec signs and verifies stateless session tokens. The signing secret
// and validity window are fixed at construction and never read from process
// state. There is no revocation: a leaked token stays valid until expiry.
type TokenCodec struct {
	secretKey []byte
	validity  time.Duration
}

// NewTokenCodec constructs a codec with the given HMAC secret and token
// lifetime.
func NewTokenCodec(secretKey []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secretKey: secretKey, validity: validity}
}

// Issue mints an HS256-signed token for the given user identity.
func (c *TokenCodec) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses and validates a token and returns its claims. A bad signature,
// malformed payload, or expired token all yield common.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
