package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/portfolio/portfolio-server/internal/errors"
	"github.com/portfolio/portfolio-server/internal/mail"
	"github.com/portfolio/portfolio-server/internal/model"
	"github.com/portfolio/portfolio-server/internal/repository"
	"github.com/portfolio/portfolio-server/internal/util"
)

const (
	MsgFieldsRequired = "All fields are required"
	MsgSendFailed     = "Failed to send message. Please try again."
	MsgFetchFailed    = "Failed to fetch contacts"
)

// ContactService stores submissions and notifies the owner. The two side
// effects run in sequence and are not atomic: a stored submission whose
// notification fails is still reported as a failure.
type ContactService struct {
	repo    repository.ContactRepository
	mailer  mail.Mailer
	mailbox string
	now     func() time.Time
}

func NewContactService(repo repository.ContactRepository, mailer mail.Mailer, mailbox string) *ContactService {
	return &ContactService{
		repo:    repo,
		mailer:  mailer,
		mailbox: mailbox,
		now:     time.Now,
	}
}

// Stage names the side effect that failed inside a submit error.
type Stage string

const (
	StageStore  Stage = "store"
	StageNotify Stage = "notify"
)

type SubmitError struct {
	Stage Stage
	Err   error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("contact %s: %v", e.Stage, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Submit validates in, appends it to the store and sends one notification.
// Validation failures make no outbound calls. A store failure skips the
// notification.
func (s *ContactService) Submit(ctx context.Context, in model.SubmitInput) (*model.Submission, error) {
	if !in.Complete() {
		return nil, apperrors.ValidationError(MsgFieldsRequired)
	}

	sub := model.NewSubmission(in, s.now())

	if err := s.repo.Append(ctx, sub); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")
		return nil, apperrors.Upstream(MsgSendFailed, &SubmitError{Stage: StageStore, Err: err})
	}

	if err := s.mailer.Send(ctx, mail.NewNotification(sub, s.mailbox)); err != nil {
		log.Error().
			Err(err).
			Str("transport", s.mailer.Name()).
			Str("email", util.MaskEmail(sub.Email)).
			Msg("contact saved but notification failed")
		return &sub, apperrors.Upstream(MsgSendFailed, &SubmitError{Stage: StageNotify, Err: err})
	}

	return &sub, nil
}

// List returns every stored submission, oldest first, as the store encodes it.
func (s *ContactService) List(ctx context.Context) (json.RawMessage, error) {
	data, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch contacts")
		return nil, apperrors.Upstream(MsgFetchFailed, err)
	}
	return data, nil
}
