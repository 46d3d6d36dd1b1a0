package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/portfolio/portfolio-server/internal/errors"
	"github.com/portfolio/portfolio-server/internal/mail"
	"github.com/portfolio/portfolio-server/internal/model"
)

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Append(ctx context.Context, sub model.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockContactRepo) List(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMailer) Verify(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockMailer) Name() string {
	return "mock"
}

func errorCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr.Code
}

func newTestContactService(repo *mockContactRepo, mailer *mockMailer) *ContactService {
	svc := NewContactService(repo, mailer, "owner@example.com")
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	input := model.SubmitInput{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	expected := model.Submission{
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Hello",
		Timestamp: "2025-05-01T09:30:00.000Z",
	}

	t.Run("stores then notifies", func(t *testing.T) {
		repo := new(mockContactRepo)
		mailer := new(mockMailer)
		repo.On("Append", ctx, expected).Return(nil).Once()
		mailer.On("Send", ctx, mock.MatchedBy(func(msg mail.Message) bool {
			return msg.To == "owner@example.com" && msg.Subject == "New message from Ada"
		})).Return(nil).Once()

		sub, err := newTestContactService(repo, mailer).Submit(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, expected, *sub)

		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("empty fields make no outbound calls", func(t *testing.T) {
		for _, in := range []model.SubmitInput{
			{Email: "ada@example.com", Message: "Hello"},
			{Name: "Ada", Message: "Hello"},
			{Name: "Ada", Email: "ada@example.com"},
			{},
		} {
			repo := new(mockContactRepo)
			mailer := new(mockMailer)

			_, err := newTestContactService(repo, mailer).Submit(ctx, in)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidation, errorCode(t, err))

			repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
			mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		}
	})

	t.Run("store failure skips the notification", func(t *testing.T) {
		repo := new(mockContactRepo)
		mailer := new(mockMailer)
		repo.On("Append", ctx, expected).Return(errors.New("connection reset")).Once()

		_, err := newTestContactService(repo, mailer).Submit(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeUpstream, errorCode(t, err))

		var submitErr *SubmitError
		require.ErrorAs(t, err, &submitErr)
		assert.Equal(t, StageStore, submitErr.Stage)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("notification failure after store is still a failure", func(t *testing.T) {
		repo := new(mockContactRepo)
		mailer := new(mockMailer)
		repo.On("Append", ctx, expected).Return(nil).Once()
		mailer.On("Send", ctx, mock.Anything).Return(errors.New("relay rejected")).Once()

		sub, err := newTestContactService(repo, mailer).Submit(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeUpstream, errorCode(t, err))

		var submitErr *SubmitError
		require.ErrorAs(t, err, &submitErr)
		assert.Equal(t, StageNotify, submitErr.Stage)
		require.NotNil(t, sub)
		repo.AssertNumberOfCalls(t, "Append", 1)
		mailer.AssertNumberOfCalls(t, "Send", 1)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the store payload unchanged", func(t *testing.T) {
		raw := json.RawMessage(`[{"name":"Ada"},{"name":"Grace"}]`)
		repo := new(mockContactRepo)
		repo.On("List", ctx).Return(raw, nil)

		got, err := newTestContactService(repo, new(mockMailer)).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, string(raw), string(got))
	})

	t.Run("wraps store errors", func(t *testing.T) {
		repo := new(mockContactRepo)
		repo.On("List", ctx).Return(nil, errors.New("timeout"))

		_, err := newTestContactService(repo, new(mockMailer)).List(ctx)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUpstream, appErr.Code)
		assert.Equal(t, MsgFetchFailed, appErr.Message)
	})
}
