package repository

import (
	"context"
	"encoding/json"

	"github.com/portfolio/portfolio-server/internal/model"
)

type sheetsClient interface {
	Append(ctx context.Context, sub model.Submission) error
	Fetch(ctx context.Context) (json.RawMessage, error)
}

type sheetContactRepo struct {
	client sheetsClient
}

func NewSheetContactRepository(client sheetsClient) ContactRepository {
	return &sheetContactRepo{client: client}
}

func (r *sheetContactRepo) Append(ctx context.Context, sub model.Submission) error {
	return r.client.Append(ctx, sub)
}

func (r *sheetContactRepo) List(ctx context.Context) (json.RawMessage, error) {
	return r.client.Fetch(ctx)
}
