package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubContactService returns a fixed error from SubmitContact.
type stubContactService struct {
	err error
}

func (s *stubContactService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	return s.err
}

func postContact(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

const validContactBody = `{"name":"Visitor","email":"v@example.com","message":"A long enough message."}`

func TestContactSubmit(t *testing.T) {
	cfg := &utils.Config{App: utils.AppConfig{Env: "test"}}

	t.Run("success envelope", func(t *testing.T) {
		h := NewContactHandler(&stubContactService{}, cfg, zap.NewNop())
		rec := postContact(t, h, validContactBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		h := NewContactHandler(&stubContactService{}, cfg, zap.NewNop())
		rec := postContact(t, h, `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sentinel errors map to statuses", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"validation", fmt.Errorf("%w: message too short", usecase.ErrValidation), 400},
			{"conflict", fmt.Errorf("%w: duplicate", usecase.ErrConflict), 400},
			{"upload", fmt.Errorf("%w: bad file", usecase.ErrUpload), 400},
			{"unauthorized", fmt.Errorf("%w: nope", usecase.ErrUnauthorized), 401},
			{"not found", fmt.Errorf("%w: contact", usecase.ErrNotFound), 404},
			{"mail delivery", fmt.Errorf("%w: smtp down", usecase.ErrMailDelivery), 500},
			{"unknown", errors.New("pool exhausted"), 500},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				h := NewContactHandler(&stubContactService{err: tc.err}, cfg, zap.NewNop())
				rec := postContact(t, h, validContactBody)

				assert.Equal(t, tc.code, rec.Code)
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
			})
		}
	})

	t.Run("production hides internal detail", func(t *testing.T) {
		prod := &utils.Config{App: utils.AppConfig{Env: "production"}}
		h := NewContactHandler(&stubContactService{err: errors.New("pg: connection refused")}, prod, zap.NewNop())
		rec := postContact(t, h, validContactBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("dev surfaces internal detail", func(t *testing.T) {
		h := NewContactHandler(&stubContactService{err: errors.New("pg: connection refused")}, cfg, zap.NewNop())
		rec := postContact(t, h, validContactBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}
