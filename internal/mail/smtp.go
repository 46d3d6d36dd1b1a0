package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

const smtpsPort = 465

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPMailer relays through an authenticated SMTP submission server, e.g.
// smtp-relay.brevo.com:587 or smtp.gmail.com with an app password.
type SMTPMailer struct {
	client *gomail.Client
	host   string
}

func NewSMTPMailer(opts SMTPOptions) (*SMTPMailer, error) {
	clientOpts := []gomail.Option{
		gomail.WithPort(opts.Port),
		gomail.WithTimeout(opts.Timeout),
	}
	if opts.Port == smtpsPort {
		clientOpts = append(clientOpts, gomail.WithSSL())
	} else {
		clientOpts = append(clientOpts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	if opts.Username != "" || opts.Password != "" {
		clientOpts = append(clientOpts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(opts.Username),
			gomail.WithPassword(opts.Password),
		)
	}

	client, err := gomail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, host: opts.Host}, nil
}

func (m *SMTPMailer) Name() string {
	return "smtp"
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	email, err := buildSMTPMessage(msg)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		log.Error().Err(err).Str("host", m.host).Dur("elapsed", time.Since(start)).Msg("smtp send error")
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Info().Str("host", m.host).Dur("elapsed", time.Since(start)).Msg("notification email sent")
	return nil
}

// Verify opens and closes an authenticated session.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return m.client.Close()
}

func buildSMTPMessage(msg Message) (*gomail.Msg, error) {
	email := gomail.NewMsg()
	if err := email.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		// A malformed visitor address only loses the Reply-To header.
		if err := email.ReplyTo(msg.ReplyTo); err != nil {
			log.Debug().Err(err).Msg("skipping invalid reply-to address")
		}
	}
	email.Subject(msg.Subject)
	email.SetBodyString(gomail.TypeTextPlain, msg.Text)
	return email, nil
}
