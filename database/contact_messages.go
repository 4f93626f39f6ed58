package database

import (
	"context"
	"time"
)

const createContactMessage = `
INSERT INTO contact_messages (id, visitor_id, name, email, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at
`

type CreateContactMessageParams struct {
	ID        int64
	VisitorID int64
	Name      string
	Email     string
	Message   string
}

func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (time.Time, error) {
	row := q.db.QueryRowContext(ctx, createContactMessage,
		arg.ID,
		arg.VisitorID,
		arg.Name,
		arg.Email,
		arg.Message,
	)
	var createdAt time.Time
	err := row.Scan(&createdAt)
	return createdAt, err
}

const countContactMessagesByVisitorSince = `
SELECT count(*) FROM contact_messages
WHERE visitor_id = $1 AND created_at >= $2
`

func (q *Queries) CountContactMessagesByVisitorSince(ctx context.Context, visitorID int64, since time.Time) (int64, error) {
	row := q.db.QueryRowContext(ctx, countContactMessagesByVisitorSince, visitorID, since)
	var count int64
	err := row.Scan(&count)
	return count, err
}
