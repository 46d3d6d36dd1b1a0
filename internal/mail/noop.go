package mail

import (
	"context"

	"github.com/rs/zerolog/log"
)

// NoopMailer is used when no mail transport is configured.
type NoopMailer struct{}

func (NoopMailer) Name() string {
	return "none"
}

func (NoopMailer) Send(ctx context.Context, msg Message) error {
	log.Debug().Str("subject", msg.Subject).Msg("mail transport disabled, notification skipped")
	return nil
}

func (NoopMailer) Verify(ctx context.Context) error {
	return nil
}
