package quote

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("quote not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, q *Quote) error {
	request, err := json.Marshal(q.Request)
	if err != nil {
		return err
	}
	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO quotes
			(id, customer_id, customer_email, event_date, status,
			 request, breakdown, total_minor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, q.ID, q.CustomerID, q.CustomerEmail, q.EventDate, q.Status,
		request, breakdown, q.Breakdown.Total)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Quote, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, customer_id, customer_email, event_date, status,
		       request, breakdown, created_at, updated_at
		FROM quotes
		WHERE id = $1
	`, id)

	return scanQuote(row)
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string) ([]Quote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, customer_email, event_date, status,
		       request, breakdown, created_at, updated_at
		FROM quotes
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectQuotes(rows)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]Quote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, customer_email, event_date, status,
		       request, breakdown, created_at, updated_at
		FROM quotes
		WHERE status = $1
		ORDER BY created_at ASC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectQuotes(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE quotes
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuote(row pgx.Row) (*Quote, error) {
	q := &Quote{}
	var request, breakdown []byte

	err := row.Scan(
		&q.ID, &q.CustomerID, &q.CustomerEmail, &q.EventDate, &q.Status,
		&request, &breakdown, &q.CreatedAt, &q.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(request, &q.Request); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdown, &q.Breakdown); err != nil {
		return nil, err
	}
	return q, nil
}

func collectQuotes(rows pgx.Rows) ([]Quote, error) {
	var quotes []Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, rows.Err()
}
