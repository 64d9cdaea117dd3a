package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newClaims(exp time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portal.example",
			Subject:   "https://alice.example/profile/card#me",
			Audience:  jwt.ClaimStrings{"portal.example"},
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        "cn3q8s6p0l4c73a0f5dg",
		},
		PodRoot: "https://alice.example/",
	}
}

func TestCreateAndValidate(t *testing.T) {
	token, err := Create(newClaims(time.Now().Add(time.Hour)), secret)
	if !assert.NoError(t, err) {
		return
	}

	claims, err := Validate(token, secret, "portal.example")
	if assert.NoError(t, err) {
		assert.Equal(t, "https://alice.example/profile/card#me", claims.Subject)
		assert.Equal(t, "cn3q8s6p0l4c73a0f5dg", claims.ID)
		assert.Equal(t, "https://alice.example/", claims.PodRoot)
	}
}

func TestValidateRejects(t *testing.T) {
	expired, err := Create(newClaims(time.Now().Add(-time.Hour)), secret)
	assert.NoError(t, err)
	_, err = Validate(expired, secret, "portal.example")
	assert.Error(t, err)

	valid, err := Create(newClaims(time.Now().Add(time.Hour)), secret)
	assert.NoError(t, err)

	_, err = Validate(valid, []byte("another secret of the same size!"), "portal.example")
	assert.Error(t, err)

	_, err = Validate(valid, secret, "other.example")
	assert.Error(t, err)

	_, err = Validate("not-a-jwt", secret, "")
	assert.Error(t, err)

	_, err = Create(newClaims(time.Now().Add(time.Hour)), nil)
	assert.Error(t, err)
}
