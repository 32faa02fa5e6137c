package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"troybbq/internal/pricing"
	"troybbq/internal/quote"
)

func savedQuote(t *testing.T) (*quote.InMemoryRepository, *quote.Quote) {
	t.Helper()
	repo := quote.NewInMemoryRepository()

	q := &quote.Quote{
		ID:            "q-1",
		CustomerID:    "cust-1",
		CustomerEmail: "cust@example.com",
		Status:        "PENDING",
		Request:       pricing.Request{GuestCount: 25, AppetiteLevel: "normal"},
		Breakdown: pricing.Breakdown{
			AdjustedMenuCost: 60000,
			DeliveryFee:      2000,
			Subtotal:         62000,
			Tax:              4960,
			Total:            66960,
			Deposit:          33480,
			Balance:          33480,
		},
	}
	if err := repo.Save(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return repo, q
}

func TestRenderConfirmation(t *testing.T) {
	_, q := savedQuote(t)

	body, err := RenderConfirmation(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"q-1", "25 guests", "$669.60", "$334.80"} {
		if !strings.Contains(body, want) {
			t.Fatalf("confirmation body missing %q:\n%s", want, body)
		}
	}
}

type failingSender struct{}

func (failingSender) Send(ctx context.Context, recipient, subject, body string) error {
	return errors.New("smtp down")
}

func TestProcessPendingMarksSent(t *testing.T) {
	quotes, q := savedQuote(t)
	repo := NewInMemoryRepository()
	svc := NewService(repo, quotes, LogSender{})

	_ = svc.Enqueue(context.Background(), q.ID, q.CustomerEmail)

	if err := svc.ProcessPending(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.emails[0].Status != "SENT" {
		t.Fatalf("expected SENT, got %s", repo.emails[0].Status)
	}
	if repo.emails[0].SentAt == nil {
		t.Fatal("sent_at not recorded")
	}
}

func TestProcessPendingRecordsFailure(t *testing.T) {
	quotes, q := savedQuote(t)
	repo := NewInMemoryRepository()
	svc := NewService(repo, quotes, failingSender{})

	_ = svc.Enqueue(context.Background(), q.ID, q.CustomerEmail)

	if err := svc.ProcessPending(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email := repo.emails[0]
	if email.Status != "FAILED" {
		t.Fatalf("expected FAILED, got %s", email.Status)
	}
	if email.FailureReason == nil || *email.FailureReason != "smtp down" {
		t.Fatalf("failure reason not recorded: %v", email.FailureReason)
	}
}

func TestProcessPendingUnknownQuote(t *testing.T) {
	quotes := quote.NewInMemoryRepository()
	repo := NewInMemoryRepository()
	svc := NewService(repo, quotes, LogSender{})

	_ = svc.Enqueue(context.Background(), "missing", "cust@example.com")

	if err := svc.ProcessPending(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.emails[0].Status != "FAILED" {
		t.Fatalf("expected FAILED for unknown quote, got %s", repo.emails[0].Status)
	}
}
