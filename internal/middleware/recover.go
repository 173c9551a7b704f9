package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-care-tracker/internal/platform/httpx"
	"pet-care-tracker/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover reemplaza a chimw.Recoverer: loguea con nuestro logger y
// responde el error en el mismo formato JSON que el resto de la API.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
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

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
					Error:   "internal",
					Message: "internal error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
