package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer para que un panic también responda con
// el envelope {success:false} y quede en el log estructurado.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				if rv == http.ErrAbortHandler {
					panic(rv)
				}
				log.Error("panic recovered", map[string]any{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  fmt.Sprint(rv),
					"stack":  string(debug.Stack()),
				})
				respond.Status(w, http.StatusInternalServerError, respond.GenericFailure)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
