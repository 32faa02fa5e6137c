package notify

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	emails []Email
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Enqueue(ctx context.Context, quoteID, recipient string) error {
	r.emails = append(r.emails, Email{
		ID:        r.nextID,
		QuoteID:   quoteID,
		Recipient: recipient,
		Status:    "PENDING",
		CreatedAt: time.Now(),
	})
	r.nextID++
	return nil
}

func (r *InMemoryRepository) ListPending(ctx context.Context, limit int) ([]Email, error) {
	var pending []Email
	for _, e := range r.emails {
		if e.Status == "PENDING" {
			pending = append(pending, e)
			if len(pending) == limit {
				break
			}
		}
	}
	return pending, nil
}

func (r *InMemoryRepository) MarkSent(ctx context.Context, id int) error {
	return r.setStatus(id, "SENT", nil)
}

func (r *InMemoryRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	return r.setStatus(id, "FAILED", &reason)
}

func (r *InMemoryRepository) setStatus(id int, status string, reason *string) error {
	for i := range r.emails {
		if r.emails[i].ID == id {
			r.emails[i].Status = status
			r.emails[i].FailureReason = reason
			if status == "SENT" {
				now := time.Now()
				r.emails[i].SentAt = &now
			}
		}
	}
	return nil
}
