package repository

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"github.com/portfolio/portfolio-server/internal/model"
)

type pgContactRepo struct {
	db *sqlx.DB
}

func NewPostgresContactRepository(db *sqlx.DB) ContactRepository {
	return &pgContactRepo{db: db}
}

func (r *pgContactRepo) Append(ctx context.Context, sub model.Submission) error {
	if sub.ID == "" {
		sub.ID = xid.New().String()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, message, timestamp)
		VALUES (:id, :name, :email, :message, :timestamp)
	`, sub)
	return err
}

func (r *pgContactRepo) List(ctx context.Context) (json.RawMessage, error) {
	subs := []model.Submission{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT id, name, email, message, timestamp
		FROM contact_submissions
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	return json.Marshal(subs)
}
