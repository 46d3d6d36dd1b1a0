// Package sheets talks to the spreadsheet web-hook (a Google Apps Script
// deployment) that stores contact submissions.
//
// The script accepts a form-encoded POST to append a row and answers a GET
// with every stored row as a JSON array.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-server/internal/model"
	"github.com/portfolio/portfolio-server/internal/util"
)

const maxResponseBytes = 10 << 20

var ErrNotConfigured = errors.New("spreadsheet endpoint not configured")

type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Append posts one submission as application/x-www-form-urlencoded.
func (c *Client) Append(ctx context.Context, sub model.Submission) error {
	if !util.IsValidHTTPURL(c.endpoint) {
		return ErrNotConfigured
	}

	form := url.Values{}
	form.Set("name", sub.Name)
	form.Set("email", sub.Email)
	form.Set("message", sub.Message)
	form.Set("timestamp", sub.Timestamp)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("spreadsheet append error")
		return fmt.Errorf("append request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("spreadsheet append failed")
		return fmt.Errorf("append failed with status %d", resp.StatusCode)
	}

	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("spreadsheet row appended")
	return nil
}

// Fetch returns the stored rows exactly as the script serves them. The body
// must be valid JSON.
func (c *Client) Fetch(ctx context.Context) (json.RawMessage, error) {
	if !util.IsValidHTTPURL(c.endpoint) {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("spreadsheet fetch error")
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("spreadsheet fetch failed")
		return nil, fmt.Errorf("fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("spreadsheet returned invalid JSON")
	}

	log.Debug().Int("bytes", len(body)).Dur("elapsed", elapsed).Msg("spreadsheet rows fetched")
	return json.RawMessage(body), nil
}
