package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
)

// Client uploads files to a Supabase storage bucket over its REST API
// and derives public URLs for stored objects.
type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	APIKey  string
	Bucket  string
	Timeout time.Duration
}

// NewClient creates a storage client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("storage base URL is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// RandomObjectPath builds a randomized object path for an upload, keeping
// the original file extension: <prefix>/<random>_<unix>.<ext>.
func RandomObjectPath(prefix, fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s/%s_%d.%s", prefix, name, time.Now().Unix(), ext)
}

// Upload stores an object and returns its public URL. A failed upload
// returns an error and nothing is recorded, so callers can abort before
// touching the database.
func (c *Client) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	start := time.Now()
	defer func() {
		util.ImageUploadLatency.Observe(time.Since(start).Seconds())
	}()

	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		util.ImageUploadsFailed.Inc()
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		util.ImageUploadsFailed.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload %s: status %d: %s", objectPath, resp.StatusCode, string(body))
	}

	return c.PublicURL(objectPath), nil
}

// PublicURL returns the public URL for a stored object
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}
