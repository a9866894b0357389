package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	written, err := WriteJSON(recorder, map[string]string{"status": "ok"}, http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	assert.Equal(t, recorder.Body.Len(), written)
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	recorder := httptest.NewRecorder()

	_, err := WriteJSON(recorder, map[string]string{"error": "not found"}, http.StatusNotFound)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"not found"}`, recorder.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(recorder, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
