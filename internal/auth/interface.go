package auth

import "forum/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// The admin middleware only depends on this, not on how keys are fetched.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has
	// an invalid signature, and domain.ErrForbidden if it lacks the admin role.
	VerifyToken(tokenString string) (*models.AdminClaims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	Close() error
}
