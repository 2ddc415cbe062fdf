package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"forum/internal/httputil"
)

// Recovery answers a panicking forum handler with the client's failure body
// and logs the route and stack. It must sit inside the metrics middleware so
// the 500 is counted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// The server aborts the connection for this one
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("forum handler panicked",
					"panic", rec,
					"route", r.Pattern,
					"path", r.URL.Path,
					"admin", httputil.AdminSubject(r),
					"stack", string(debug.Stack()),
				)
				httputil.RespondFailure(w, http.StatusInternalServerError, "Erro interno do servidor")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
