package pricing

// Validate runs every precondition before any money math.
// Fail-fast: the first violated rule ends the call. The checklist
// order is fixed and pinned by tests — request shape, then rule
// config, then per-selection catalog checks.
func Validate(req *Request, cfg RuleConfig, cat *Catalog) error {
	if req.GuestCount <= 0 {
		return newError(CodeInvalidGuestCount,
			"guest count must be a positive number, got %d", req.GuestCount)
	}

	if req.DistanceMiles != nil && *req.DistanceMiles < 0 {
		return newError(CodeInvalidDistance,
			"distance cannot be negative, got %.1f", *req.DistanceMiles)
	}

	if err := validateConfig(cfg, req.AppetiteLevel); err != nil {
		return err
	}

	if len(req.Selections) == 0 {
		return newError(CodeNoMenuSelections,
			"at least one protein and side selection is required")
	}

	for _, sel := range req.Selections {
		if sel.Quantity <= 0 {
			return newError(CodeInvalidMenuQty,
				"menu quantity must be positive, got %d for %q",
				sel.Quantity, sel.ProteinRef)
		}

		protein, ok := cat.Items[sel.ProteinRef]
		if !ok {
			return newError(CodeProteinNotFound,
				"protein %q is not on the menu", sel.ProteinRef)
		}
		if _, err := priceOf(protein, cfg.BaseCurrency); err != nil {
			return err
		}

		side, ok := cat.Items[sel.SideRef]
		if !ok {
			return newError(CodeSideNotFound,
				"side %q is not on the menu", sel.SideRef)
		}
		if _, err := priceOf(side, cfg.BaseCurrency); err != nil {
			return err
		}
	}

	for _, a := range req.AddOns {
		if a.Quantity <= 0 {
			return newError(CodeInvalidAddOnQty,
				"add-on quantity must be positive, got %d for %q",
				a.Quantity, a.AddOnRef)
		}

		addon, ok := cat.AddOns[a.AddOnRef]
		if !ok {
			return newError(CodeAddOnNotFound,
				"add-on %q does not exist", a.AddOnRef)
		}
		if !addon.Active {
			return newError(CodeAddOnInactive,
				"add-on %q is not currently offered", a.AddOnRef)
		}
		if _, err := addOnPrice(addon); err != nil {
			return err
		}
	}

	return nil
}

func validateConfig(cfg RuleConfig, appetiteLevel string) error {
	if err := ValidateRules(cfg); err != nil {
		return err
	}

	mult, ok := cfg.AppetiteMultipliers[appetiteLevel]
	if !ok || mult <= 0 {
		return newError(CodeInvalidHungerLevel,
			"no appetite multiplier configured for %q", appetiteLevel)
	}

	return nil
}

// ValidateRules sanity-checks a rule configuration on its own,
// before any request exists. The settings admin form runs this so a
// bad config is rejected at save time, not at quote time.
func ValidateRules(cfg RuleConfig) error {
	if cfg.TaxRate < 0 || cfg.TaxRate > 1 {
		return newError(CodeInvalidTaxRate,
			"tax rate must be between 0 and 1, got %v", cfg.TaxRate)
	}

	if cfg.DepositRate < 0 || cfg.DepositRate > 1 {
		return newError(CodeInvalidDepositPct,
			"deposit rate must be between 0 and 1, got %v", cfg.DepositRate)
	}

	if cfg.DeliveryRadiusMiles <= 0 {
		return newError(CodeInvalidRadius,
			"delivery radius must be positive, got %v", cfg.DeliveryRadiusMiles)
	}

	if cfg.FeePerMile < 0 {
		return newError(CodeInvalidFeePerMile,
			"fee per mile cannot be negative, got %d", cfg.FeePerMile)
	}

	if cfg.MinimumOrder < 0 {
		return newError(CodeInvalidMinimum,
			"minimum order cannot be negative, got %d", cfg.MinimumOrder)
	}

	if len(cfg.AppetiteMultipliers) == 0 {
		return newError(CodeInvalidHungerLevel,
			"no appetite multipliers configured")
	}
	for level, mult := range cfg.AppetiteMultipliers {
		if mult <= 0 {
			return newError(CodeInvalidHungerLevel,
				"appetite multiplier for %q must be positive, got %v", level, mult)
		}
	}

	return nil
}
