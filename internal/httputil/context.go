package httputil

import (
	"context"
	"net/http"

	"forum/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	adminKey contextKey = "admin"
)

// WithAdmin adds verified admin claims to the request context
func WithAdmin(r *http.Request, claims *models.AdminClaims) *http.Request {
	ctx := context.WithValue(r.Context(), adminKey, claims)
	return r.WithContext(ctx)
}

// GetAdmin retrieves the admin claims, or nil on routes without the admin gate
func GetAdmin(r *http.Request) *models.AdminClaims {
	claims, _ := r.Context().Value(adminKey).(*models.AdminClaims)
	return claims
}

// AdminSubject returns the admin's subject for audit logs, or "anonymous"
// when the gate is disabled.
func AdminSubject(r *http.Request) string {
	if claims := GetAdmin(r); claims != nil && claims.Subject != "" {
		return claims.Subject
	}
	return "anonymous"
}
