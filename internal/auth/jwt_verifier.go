package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"forum/internal/domain"
	"forum/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// AdminJWTVerifier implements JWTVerifier using keys from a JWKS endpoint.
type AdminJWTVerifier struct {
	keyfunc jwt.Keyfunc
	role    string
	logger  *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from jwksURL
// and accepts tokens whose role claim equals role.
// The JWKS keys are cached and refreshed by keyfunc.
func NewJWTVerifier(jwksURL, role string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL, "role", role)
	return NewKeyfuncVerifier(jwks.Keyfunc, role, logger), nil
}

// NewKeyfuncVerifier creates a verifier over an arbitrary key lookup.
func NewKeyfuncVerifier(kf jwt.Keyfunc, role string, logger *slog.Logger) *AdminJWTVerifier {
	return &AdminJWTVerifier{keyfunc: kf, role: role, logger: logger}
}

// VerifyToken validates a JWT token and extracts the admin claims.
func (v *AdminJWTVerifier) VerifyToken(tokenString string) (*models.AdminClaims, error) {
	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256", "ES256"}))
	if err != nil {
		v.logger.Debug("token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	if claims.Role != v.role {
		v.logger.Warn("token without admin role",
			"role", claims.Role,
			"expected", v.role,
			"user_id", claims.Subject)
		return nil, domain.ErrForbidden
	}

	return claims, nil
}

// Close releases resources held by the JWT verifier.
// keyfunc manages its own refresh goroutine, so this only logs.
func (v *AdminJWTVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}
