package quote

import "context"

// Repository defines all database operations for quotes
type Repository interface {
	Save(ctx context.Context, q *Quote) error
	Get(ctx context.Context, id string) (*Quote, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Quote, error)
	ListByStatus(ctx context.Context, status string) ([]Quote, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
