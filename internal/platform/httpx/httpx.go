package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse es el body de cualquier respuesta de error.
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message" example:"validation failed: weight is required"`
}

// WriteJSON serializa v con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor mapea la taxonomía de apperr a status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError responde con el error serializado. Los errores 5xx se loguean
// con el request id y su detalle no se devuelve al cliente.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := StatusFor(err)
	msg := err.Error()

	if status >= http.StatusInternalServerError {
		if log != nil {
			log.Error("request failed", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"error":      err.Error(),
			})
		}
		if status == http.StatusServiceUnavailable {
			msg = apperr.ErrStorageUnavailable.Error()
		} else {
			msg = "internal error"
		}
	}

	WriteJSON(w, status, ErrorResponse{
		Error:   apperr.Code(err),
		Message: msg,
	})
}

// DecodeJSON lee el body en v; un JSON inválido es un error de validación.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", apperr.ErrValidation)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json", apperr.ErrValidation)
	}
	return nil
}
