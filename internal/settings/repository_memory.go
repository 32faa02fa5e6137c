package settings

import (
	"context"

	"troybbq/internal/pricing"
)

type InMemoryRepository struct {
	cfg *pricing.RuleConfig
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Load(ctx context.Context) (*pricing.RuleConfig, error) {
	if r.cfg == nil {
		return nil, ErrNotConfigured
	}
	copied := *r.cfg
	return &copied, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, cfg pricing.RuleConfig) error {
	r.cfg = &cfg
	return nil
}
