package quote

import (
	"context"
	"sort"
	"time"
)

type InMemoryRepository struct {
	quotes map[string]*Quote
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{quotes: make(map[string]*Quote)}
}

func (r *InMemoryRepository) Save(ctx context.Context, q *Quote) error {
	copied := *q
	r.quotes[q.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *q
	return &copied, nil
}

func (r *InMemoryRepository) ListByCustomer(ctx context.Context, customerID string) ([]Quote, error) {
	return r.collect(func(q *Quote) bool { return q.CustomerID == customerID })
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status string) ([]Quote, error) {
	return r.collect(func(q *Quote) bool { return q.Status == status })
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	q, ok := r.quotes[id]
	if !ok {
		return ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) collect(keep func(*Quote) bool) ([]Quote, error) {
	var quotes []Quote
	for _, q := range r.quotes {
		if keep(q) {
			quotes = append(quotes, *q)
		}
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].ID < quotes[j].ID })
	return quotes, nil
}
