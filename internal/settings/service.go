package settings

import (
	"context"
	"errors"
	"log"

	"troybbq/internal/pricing"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Defaults are the rules the shop opens with before an admin ever
// touches the settings page.
func Defaults() pricing.RuleConfig {
	return pricing.RuleConfig{
		AppetiteMultipliers: map[string]float64{
			"normal":     1.0,
			"hungry":     1.25,
			"veryHungry": 1.5,
		},
		TaxRate:             0.08,
		DepositRate:         0.5,
		DeliveryRadiusMiles: 30,
		FeePerMile:          200,
		MinimumOrder:        20000,
		BaseCurrency:        "usd",
	}
}

// Current returns the live rule configuration, seeding defaults on
// first boot so the quote form works out of the box.
func (s *Service) Current(ctx context.Context) (pricing.RuleConfig, error) {
	cfg, err := s.repo.Load(ctx)
	if errors.Is(err, ErrNotConfigured) {
		defaults := Defaults()
		if err := s.repo.Save(ctx, defaults); err != nil {
			return pricing.RuleConfig{}, err
		}
		log.Println("[SETTINGS] seeded default business rules")
		return defaults, nil
	}
	if err != nil {
		return pricing.RuleConfig{}, err
	}
	return *cfg, nil
}

// Update rejects invalid rules at save time so quote calls never
// see a broken configuration.
func (s *Service) Update(ctx context.Context, cfg pricing.RuleConfig) error {
	if err := pricing.ValidateRules(cfg); err != nil {
		return err
	}
	if cfg.BaseCurrency == "" {
		cfg.BaseCurrency = "usd"
	}
	return s.repo.Save(ctx, cfg)
}
