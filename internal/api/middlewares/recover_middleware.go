package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/markdave123-py/docextract/internal/api/handlers"
)

// JSONRecoverer turns a panic into the 500 {"success": false, "error": "Server error: ..."} response.
func JSONRecoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic serving request",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"))
				handlers.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Server error: %v", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
