package notify

import "context"

// Repository is the outbox: quotes enqueue rows, the worker drains
// them.
type Repository interface {
	Enqueue(ctx context.Context, quoteID, recipient string) error
	ListPending(ctx context.Context, limit int) ([]Email, error)
	MarkSent(ctx context.Context, id int) error
	MarkFailed(ctx context.Context, id int, reason string) error
}
