package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/s21platform/dialog-service/internal/config"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Storage.BaseURL,
		apiKey:  cfg.Storage.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Storage.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// UploadFile stores the object and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	objectURL := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, objectURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return c.PublicURL(bucket, path), nil
}

func (c *Client) RemoveFile(ctx context.Context, bucket, path string) error {
	objectURL := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, objectURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, bucket, path)
}
