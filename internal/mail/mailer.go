// Package mail sends the contact notification through an outbound relay.
// The relay is used for notification only; submissions are stored elsewhere.
package mail

import (
	"context"
	"fmt"

	"github.com/portfolio/portfolio-server/internal/config"
	"github.com/portfolio/portfolio-server/internal/model"
)

type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
	// Verify checks credentials and reachability without sending mail.
	Verify(ctx context.Context) error
	Name() string
}

// NewNotification builds the owner notification for one submission. The
// owner mailbox is both sender and recipient; replies go to the visitor.
func NewNotification(sub model.Submission, mailbox string) Message {
	return Message{
		From:    mailbox,
		To:      mailbox,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New message from %s", sub.Name),
		Text: fmt.Sprintf(
			"You got a new message from your portfolio site.\n\nName: %s\nEmail: %s\nMessage:\n%s",
			sub.Name, sub.Email, sub.Message,
		),
	}
}

// New returns the transport selected by cfg.
func New(cfg *config.Config) (Mailer, error) {
	switch transport := cfg.ResolvedMailTransport(); transport {
	case config.TransportAPI:
		return NewBrevoMailer(cfg.BrevoAPIKey, cfg.UpstreamTimeout()), nil
	case config.TransportSMTP:
		return NewSMTPMailer(SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser(),
			Password: cfg.SMTPSecret(),
			Timeout:  cfg.UpstreamTimeout(),
		})
	case config.TransportNone:
		return NoopMailer{}, nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", transport)
	}
}
