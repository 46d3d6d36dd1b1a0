package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBrevoBaseURL = "https://api.brevo.com/v3"

// BrevoMailer sends through the Brevo transactional email API.
type BrevoMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewBrevoMailer(apiKey string, timeout time.Duration) *BrevoMailer {
	return &BrevoMailer{
		apiKey:  apiKey,
		baseURL: DefaultBrevoBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBaseURL points the mailer at a different API root.
func (m *BrevoMailer) WithBaseURL(baseURL string) *BrevoMailer {
	m.baseURL = baseURL
	return m
}

func (m *BrevoMailer) Name() string {
	return "brevo-api"
}

type brevoAddress struct {
	Email string `json:"email"`
}

type brevoEmail struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	ReplyTo     *brevoAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent"`
}

func (m *BrevoMailer) Send(ctx context.Context, msg Message) error {
	payload := brevoEmail{
		Sender:      brevoAddress{Email: msg.From},
		To:          []brevoAddress{{Email: msg.To}},
		Subject:     msg.Subject,
		TextContent: msg.Text,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &brevoAddress{Email: msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := m.do(req)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("brevo send error")
		return fmt.Errorf("send request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().
			Int("status", resp.StatusCode).
			Str("response", string(detail)).
			Dur("elapsed", elapsed).
			Msg("brevo send rejected")
		return fmt.Errorf("send failed with status %d", resp.StatusCode)
	}

	log.Info().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("notification email sent")
	return nil
}

// Verify fetches the account to confirm the API key is accepted.
func (m *BrevoMailer) Verify(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/account", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := m.do(req)
	if err != nil {
		return fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("verify failed with status %d", resp.StatusCode)
	}
	return nil
}

func (m *BrevoMailer) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	return m.client.Do(req)
}
