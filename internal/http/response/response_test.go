package response

import (
	"encoding/json/v2"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/errors"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	data := map[string]string{"message": "test"}
	JSON(w, http.StatusOK, data, logger)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Error)
}

func TestJSON_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"message": "test"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestNotFound_CarriesCode(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	NotFound(w, "restaurant not found", logger)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "restaurant not found", result.Error)
	assert.Equal(t, "NOT_FOUND", result.Code)
}

func TestServiceUnavailable_CarriesCode(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ServiceUnavailable(w, "profile fetch failed", logger)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "UNAVAILABLE", result.Code)
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain not found", domainerrors.NotFound("no restaurant matches"), http.StatusNotFound, "NOT_FOUND"},
		{"domain unavailable", domainerrors.Unavailable("fetch timed out"), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"domain validation", domainerrors.Validation("bad slug"), http.StatusBadRequest, "VALIDATION"},
		{"store not found", store.ErrItemNotFound, http.StatusNotFound, ""},
		{"store conflict", store.ErrAlreadyExists, http.StatusConflict, ""},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err, logger)

			assert.Equal(t, tt.wantStatus, w.Code)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantCode, result.Code)
		})
	}
}

func TestStatusCodeBoundary(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		expectedSuccess bool
	}{
		{"200 OK", 200, true},
		{"204 No Content", 204, true},
		{"399 Custom Success", 399, true},
		{"400 Bad Request", 400, false},
		{"503 Service Unavailable", 503, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			JSON(w, tt.status, nil, logger)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSuccess, result.Success, "Status %d should have Success=%v", tt.status, tt.expectedSuccess)
		})
	}
}
