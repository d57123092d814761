package models

import "github.com/golang-jwt/jwt/v5"

// Claims defines the structure of the JWT claims. The subject is the
// username; the role claim is what the guard checks against the
// endpoint's required role.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
