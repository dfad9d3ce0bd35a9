package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
	_, hasErr := body["error"]
	assert.False(t, hasErr)
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	Created(w, "Material created successfully", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Material created successfully", body["message"])
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	BadRequest(w, "Material ID is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Material ID is required", body["error"])
}

func TestInternal(t *testing.T) {
	w := httptest.NewRecorder()
	Internal(w, errors.New("store unavailable"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "store unavailable", body["error"])
}
