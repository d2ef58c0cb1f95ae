package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestResponseSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "done", map[string]string{"id": "1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
	assert.Nil(t, body["error"])
}

func TestResponseCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseCreated(rec, "created", nil)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, true, decodeResponse(t, rec)["success"])
}

func TestErrorResponses(t *testing.T) {
	cases := []struct {
		name string
		fn   func(rec *httptest.ResponseRecorder)
		code int
	}{
		{"bad request", func(rec *httptest.ResponseRecorder) { ResponseBadRequest(rec, "bad", nil) }, 400},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { ResponseUnauthorized(rec, "no") }, 401},
		{"forbidden", func(rec *httptest.ResponseRecorder) { ResponseForbidden(rec, "nope") }, 403},
		{"not found", func(rec *httptest.ResponseRecorder) { ResponseNotFound(rec, "gone") }, 404},
		{"internal", func(rec *httptest.ResponseRecorder) { ResponseInternalError(rec, "boom") }, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec)

			assert.Equal(t, tc.code, rec.Code)
			body := decodeResponse(t, rec)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestResponseBadRequestCarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "validation failed", map[string]string{"email": "email is invalid"})

	body := decodeResponse(t, rec)
	errMap, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "email is invalid", errMap["email"])
}
