package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

// Kind selects the validation profile for an upload.
const (
	KindImage    = "image"
	KindDocument = "document"
)

// allowedMimeTypes maps an upload kind to the content types the store accepts.
var allowedMimeTypes = map[string]map[string]bool{
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	},
	KindDocument: {
		"application/pdf": true,
	},
}

// Uploader pushes an in-memory file buffer to the object store and
// returns the durable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, kind string) (string, error)
}

type storeClient struct {
	baseURL string
	apiKey  string
	maxSize int64
	client  *http.Client
	log     *zap.Logger
}

func NewStoreClient(cfg utils.MediaConfig, log *zap.Logger) Uploader {
	return &storeClient{
		baseURL: cfg.StoreURL,
		apiKey:  cfg.APIKey,
		maxSize: cfg.MaxUploadSize,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With(zap.String("component", "media")),
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *storeClient) Upload(ctx context.Context, data []byte, filename, kind string) (string, error) {
	if c.maxSize > 0 && int64(len(data)) > c.maxSize {
		return "", fmt.Errorf("upload %s: file exceeds %d bytes", filename, c.maxSize)
	}

	mimeType := http.DetectContentType(data)
	allowed, ok := allowedMimeTypes[kind]
	if !ok {
		return "", fmt.Errorf("upload %s: unknown kind %q", filename, kind)
	}
	if !allowed[mimeType] {
		return "", fmt.Errorf("upload %s: content type %s not allowed for %s", filename, mimeType, kind)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if err := writer.WriteField("kind", kind); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Media store request failed",
			zap.Error(err),
			zap.String("filename", filename),
		)
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("Media store rejected upload",
			zap.Int("status", resp.StatusCode),
			zap.String("filename", filename),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("upload %s: store returned status %d", filename, resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("upload %s: decode store response: %w", filename, err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload %s: store returned empty url", filename)
	}

	c.log.Info("Media uploaded",
		zap.String("filename", filename),
		zap.String("kind", kind),
		zap.String("url", out.URL),
	)

	return out.URL, nil
}
