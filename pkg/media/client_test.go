package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-cms/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pngHeader is the magic prefix http.DetectContentType recognizes as image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestClient(t *testing.T, handler http.HandlerFunc, maxSize int64) (Uploader, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewStoreClient(utils.MediaConfig{
		StoreURL:      srv.URL,
		APIKey:        "test-key",
		MaxUploadSize: maxSize,
	}, zap.NewNop())
	return client, srv
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("posts multipart with bearer key", func(t *testing.T) {
		var gotAuth string
		var gotFilename string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			gotFilename = header.Filename
			assert.Equal(t, "image", r.FormValue("kind"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"url":"https://store.example.com/abc.png"}`))
		}, 1<<20)

		url, err := client.Upload(ctx, pngHeader, "photo.png", KindImage)
		require.NoError(t, err)
		assert.Equal(t, "https://store.example.com/abc.png", url)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "photo.png", gotFilename)
	})

	t.Run("rejects oversized file before dialing", func(t *testing.T) {
		dialed := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			dialed = true
		}, 4)

		_, err := client.Upload(ctx, pngHeader, "big.png", KindImage)
		require.Error(t, err)
		assert.False(t, dialed)
	})

	t.Run("rejects wrong content type for kind", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, 1<<20)

		// PNG bytes offered as a document must fail the mime check.
		_, err := client.Upload(ctx, pngHeader, "fake.pdf", KindDocument)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, 1<<20)

		_, err := client.Upload(ctx, pngHeader, "x.png", "archive")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
	})

	t.Run("store error surfaces", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		}, 1<<20)

		_, err := client.Upload(ctx, pngHeader, "photo.png", KindImage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("empty url in response is an error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}, 1<<20)

		_, err := client.Upload(ctx, pngHeader, "photo.png", KindImage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty url")
	})
}
