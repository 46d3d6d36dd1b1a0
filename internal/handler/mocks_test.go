package handler

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

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
