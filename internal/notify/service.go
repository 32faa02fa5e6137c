package notify

import (
	"context"
	"log"
	"time"

	"troybbq/internal/quote"
)

// Sender delivers one rendered message. The default just logs;
// a real SMTP/ESP integration slots in behind this.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// LogSender is the out-of-the-box Sender for environments without
// mail credentials.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	log.Printf("[MAIL] to=%s subject=%q (%d bytes)", recipient, subject, len(body))
	return nil
}

// QuoteReader is the one read the worker needs from quote storage.
type QuoteReader interface {
	Get(ctx context.Context, id string) (*quote.Quote, error)
}

type Service struct {
	repo   Repository
	quotes QuoteReader
	sender Sender
}

func NewService(repo Repository, quotes QuoteReader, sender Sender) *Service {
	return &Service{repo: repo, quotes: quotes, sender: sender}
}

// Enqueue satisfies the quote service's Mailer dependency.
func (s *Service) Enqueue(ctx context.Context, quoteID, recipient string) error {
	return s.repo.Enqueue(ctx, quoteID, recipient)
}

// RunWorker drains the outbox until ctx is cancelled.
func (s *Service) RunWorker(ctx context.Context) {
	log.Println("email worker started")

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("email worker stopped")
			return
		case <-ticker.C:
			if err := s.ProcessPending(ctx); err != nil {
				log.Printf("[MAIL] worker pass failed: %v", err)
			}
		}
	}
}

// ProcessPending sends every queued confirmation once. Failures are
// recorded per row and do not stop the batch.
func (s *Service) ProcessPending(ctx context.Context) error {
	pending, err := s.repo.ListPending(ctx, 20)
	if err != nil {
		return err
	}

	for _, email := range pending {
		q, err := s.quotes.Get(ctx, email.QuoteID)
		if err != nil {
			_ = s.repo.MarkFailed(ctx, email.ID, "quote lookup failed: "+err.Error())
			continue
		}

		body, err := RenderConfirmation(q)
		if err != nil {
			_ = s.repo.MarkFailed(ctx, email.ID, "render failed: "+err.Error())
			continue
		}

		subject := "Your Troy BBQ catering quote"
		if err := s.sender.Send(ctx, email.Recipient, subject, body); err != nil {
			_ = s.repo.MarkFailed(ctx, email.ID, err.Error())
			continue
		}

		if err := s.repo.MarkSent(ctx, email.ID); err != nil {
			return err
		}
	}

	return nil
}
