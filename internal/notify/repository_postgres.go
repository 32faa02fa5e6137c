package notify

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Enqueue(ctx context.Context, quoteID, recipient string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO quote_emails (quote_id, recipient, status)
		VALUES ($1, $2, 'PENDING')
	`, quoteID, recipient)
	return err
}

func (r *PostgresRepository) ListPending(ctx context.Context, limit int) ([]Email, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quote_id, recipient, status, failure_reason, created_at, sent_at
		FROM quote_emails
		WHERE status = 'PENDING'
		ORDER BY created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []Email
	for rows.Next() {
		var e Email
		if err := rows.Scan(
			&e.ID, &e.QuoteID, &e.Recipient, &e.Status,
			&e.FailureReason, &e.CreatedAt, &e.SentAt,
		); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *PostgresRepository) MarkSent(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE quote_emails
		SET status = 'SENT', sent_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE quote_emails
		SET status = 'FAILED', failure_reason = $1
		WHERE id = $2
	`, reason, id)
	return err
}
