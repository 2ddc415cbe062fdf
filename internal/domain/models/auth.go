package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the claims the admin panel's identity provider issues.
type AdminClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 string `json:"role"` // must match the configured admin role
}
