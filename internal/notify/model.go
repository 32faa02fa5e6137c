package notify

import "time"

// Email is one queued confirmation message.
// Status: PENDING -> SENT | FAILED.
type Email struct {
	ID            int
	QuoteID       string
	Recipient     string
	Status        string
	FailureReason *string
	CreatedAt     time.Time
	SentAt        *time.Time
}
