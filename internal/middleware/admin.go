package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"forum/internal/auth"
	"forum/internal/domain"
	"forum/internal/httputil"
)

// RequireAdmin lets a request through only with a bearer token carrying the
// admin role. A nil verifier disables the gate.
func RequireAdmin(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httputil.RespondFailure(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					logger.Warn("admin route refused", "path", r.URL.Path, "method", r.Method)
					httputil.RespondFailure(w, http.StatusForbidden, "admin role required")
					return
				}
				httputil.RespondFailure(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithAdmin(r, claims))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
