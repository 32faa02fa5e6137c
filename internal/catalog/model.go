package catalog

import (
	"time"

	"troybbq/internal/pricing"
)

// MenuItem is a persisted protein or side with its price variants.
type MenuItem struct {
	Ref       string            `json:"ref"`
	Name      string            `json:"name"`
	Category  string            `json:"category"` // protein | side
	Variants  []pricing.Variant `json:"variants"`
	ImageURL  *string           `json:"image_url,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AddOn is a persisted extra (dessert tray, drinks, service staff).
// Only active add-ons are quotable.
type AddOn struct {
	Ref         string    `json:"ref"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Active      bool      `json:"active"`
	Currency    string    `json:"currency"`
	AmountMinor int64     `json:"amount_minor"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m MenuItem) toPricing() pricing.Item {
	return pricing.Item{
		Ref:      m.Ref,
		Name:     m.Name,
		Category: m.Category,
		Variants: m.Variants,
	}
}

func (a AddOn) toPricing() pricing.AddOn {
	return pricing.AddOn{
		Ref:         a.Ref,
		Name:        a.Name,
		Category:    a.Category,
		Active:      a.Active,
		Currency:    a.Currency,
		AmountMinor: a.AmountMinor,
	}
}
