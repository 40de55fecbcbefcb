// Package auth mints the mock bearer tokens handed out on sign-in.
//
// A token is a compact HS256 JWT: three dot-separated segments, each of them
// different for every token (random key id, random token id, signature under
// a per-process random key). Nothing ever verifies these tokens.
package auth

import (
	"time"

	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var signingKey = common.GenerateRandByteArray(32)

// now is replaced in tests.
var now = time.Now

type Claims struct {
	jwt.RegisteredClaims
	Anonymous bool `json:"anon,omitempty"`
}

// NewToken returns a fresh token for userID.
func NewToken(userID string, anonymous bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       common.RandomID(12),
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now()),
		},
		Anonymous: anonymous,
	})
	token.Header["kid"] = common.RandomID(8)
	return token.SignedString(signingKey)
}
