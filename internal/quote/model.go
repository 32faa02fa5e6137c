package quote

import (
	"time"

	"troybbq/internal/pricing"
)

// Quote is a priced, persisted catering request.
// Status: PENDING -> APPROVED | REJECTED.
type Quote struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customer_id"`
	CustomerEmail string            `json:"customer_email"`
	EventDate     *time.Time        `json:"event_date,omitempty"`
	Status        string            `json:"status"`
	Request       pricing.Request   `json:"request"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
