package records

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/httpx"
	"pet-care-tracker/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /<resource> para cada store sobre r.
// El router decide el prefijo (/api) y si exige auth.
func RegisterRoutes(r chi.Router, stores []*Store, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	for _, st := range stores {
		st := st
		r.Route("/"+st.schema.Resource, func(rr chi.Router) {
			rr.Get("/", listHandler(st, log))
			rr.Post("/", createHandler(st, log))
			rr.Delete("/{id}", deleteHandler(st, log))
		})
	}
}

// listHandler godoc
// @Summary Listar registros
// @Description Devuelve todos los registros del recurso en orden de inserción. Sin paginación ni filtros.
// @Tags records
// @Produce json
// @Param resource path string true "Recurso" Enums(petinfo, vet, vaccines, activity, diet, potty, hygiene)
// @Success 200 {array} object
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/{resource} [get]
func listHandler(st *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := st.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// createHandler godoc
// @Summary Crear registro
// @Description Valida el body contra los campos del recurso (requeridos + tipos) y devuelve el registro guardado con id, createdAt y updatedAt.
// @Tags records
// @Accept json
// @Produce json
// @Param resource path string true "Recurso" Enums(petinfo, vet, vaccines, activity, diet, potty, hygiene)
// @Param payload body object true "Campos del recurso, ej. petinfo: {pet_name, breed, weight, age}"
// @Success 200 {object} object
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/{resource} [post]
func createHandler(st *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := httpx.DecodeJSON(r, &body); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if body == nil {
			// body "null"
			body = map[string]json.RawMessage{}
		}

		rec, err := st.Create(r.Context(), body)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

// deleteHandler godoc
// @Summary Borrar registro
// @Description Borra por id. Un id inexistente (o ya borrado) devuelve 404.
// @Tags records
// @Produce json
// @Param resource path string true "Recurso" Enums(petinfo, vet, vaccines, activity, diet, potty, hygiene)
// @Param id path int true "ID del registro"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/{resource}/{id} [delete]
func deleteHandler(st *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(chi.URLParam(r, "id"))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.WriteError(w, r, log, fmt.Errorf("%w: id must be an integer", apperr.ErrValidation))
			return
		}

		res, err := st.Delete(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}
