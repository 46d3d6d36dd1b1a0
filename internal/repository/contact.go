package repository

import (
	"context"
	"encoding/json"

	"github.com/portfolio/portfolio-server/internal/model"
)

// ContactRepository is the system of record for contact submissions. List
// returns the stored rows already encoded as a JSON array, oldest first, so
// that upstream JSON reaches the admin view without being reshaped.
type ContactRepository interface {
	Append(ctx context.Context, sub model.Submission) error
	List(ctx context.Context) (json.RawMessage, error)
}
