package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a portal session token
type Claims struct {
	jwt.RegisteredClaims
	PodRoot string `json:"pod,omitempty"`
}
