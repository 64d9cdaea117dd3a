// Package jwt signs and validates portal session tokens
package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Create creates server signed JWT
func Create(claims Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("session secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign jwt")
	}

	return signed, nil
}

// Validate checks is jwt signature valid and not expired
func Validate(token string, secret []byte, audience string) (Claims, error) {
	var claims Claims

	if len(secret) == 0 {
		return claims, fmt.Errorf("session secret is not configured")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, options...)
	if err != nil {
		return claims, errors.Wrap(err, "invalid jwt")
	}

	if claims.ID == "" {
		return claims, fmt.Errorf("jwt has no jti")
	}

	return claims, nil
}
