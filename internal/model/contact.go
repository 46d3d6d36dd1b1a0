package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout matches the ISO-8601 form the front-end and the
// spreadsheet script already store (millisecond precision, UTC "Z").
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Submission struct {
	ID        string `db:"id" json:"-"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Message   string `db:"message" json:"message"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UnmarshalJSON accepts any JSON scalar for each field, see Text.
func (in *SubmitInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    Text `json:"name"`
		Email   Text `json:"email"`
		Message Text `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*in = SubmitInput{
		Name:    raw.Name.String(),
		Email:   raw.Email.String(),
		Message: raw.Message.String(),
	}
	return nil
}

// Complete reports whether every field is non-empty. Content is not
// inspected beyond that; whitespace counts as content.
func (in SubmitInput) Complete() bool {
	return in.Name != "" && in.Email != "" && in.Message != ""
}

func NewSubmission(in SubmitInput, now time.Time) Submission {
	return Submission{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: FormatTimestamp(now),
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
