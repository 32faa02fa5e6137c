package settings

import (
	"context"

	"troybbq/internal/pricing"
)

// Repository persists the single tenant rule configuration.
type Repository interface {
	Load(ctx context.Context) (*pricing.RuleConfig, error)
	Save(ctx context.Context, cfg pricing.RuleConfig) error
}
