package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: weight is required", apperr.ErrValidation), http.StatusBadRequest},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperr.ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("%w: diet 3", apperr.ErrNotFound), http.StatusNotFound},
		{apperr.ErrAlreadyExists, http.StatusConflict},
		{apperr.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWriteError_HidesServerDetails(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})
	req := httptest.NewRequest(http.MethodGet, "/api/diet", nil)

	rec := httptest.NewRecorder()
	WriteError(rec, req, log, fmt.Errorf("%w: list diet_tracker: dial tcp 10.0.0.1:5432", apperr.ErrStorageUnavailable))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"storage_unavailable","message":"storage unavailable"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "10.0.0.1")

	rec = httptest.NewRecorder()
	WriteError(rec, req, nil, fmt.Errorf("%w: weight is required", apperr.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed","message":"validation failed: weight is required"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v map[string]any

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, float64(1), v["a"])

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.ErrorIs(t, DecodeJSON(req, &v), apperr.ErrValidation)
}
