package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"troybbq/internal/distance"
)

// Calculate is the whole engine: validate, estimate distance, price
// the catalog selections, and produce an itemized breakdown. Pure —
// no I/O, no shared state, same inputs always give the same result.
//
// The step order is a contract: menu cost, appetite adjustment,
// add-ons, delivery, subtotal, tax, minimum-order guard, deposit,
// balance. Reordering any step changes quoted totals.
func Calculate(req *Request, cfg RuleConfig, cat *Catalog, est distance.Estimator) (b *Breakdown, err error) {
	// Anything unexpected still surfaces as a known code, never a
	// raw panic, so caller switches stay exhaustive.
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = newError(CodeCalculationError, "quote calculation failed: %v", r)
		}
	}()

	if err := Validate(req, cfg, cat); err != nil {
		return nil, err
	}

	// 1. raw menu cost
	var menuCost int64
	for _, sel := range req.Selections {
		protein, err := priceOf(cat.Items[sel.ProteinRef], cfg.BaseCurrency)
		if err != nil {
			return nil, err
		}
		side, err := priceOf(cat.Items[sel.SideRef], cfg.BaseCurrency)
		if err != nil {
			return nil, err
		}
		menuCost += (protein + side) * int64(sel.Quantity)
	}

	// 2. appetite adjustment (validated present by Validate)
	adjusted := roundRate(menuCost, cfg.AppetiteMultipliers[req.AppetiteLevel])

	// 3. add-ons, never multiplied
	var addOnCost int64
	for _, a := range req.AddOns {
		price, err := addOnPrice(cat.AddOns[a.AddOnRef])
		if err != nil {
			return nil, err
		}
		addOnCost += price * int64(a.Quantity)
	}

	// 4. delivery eligibility + fee
	miles, err := resolveDistance(req, est)
	if err != nil {
		return nil, err
	}

	check := distance.CheckRadius(miles, cfg.DeliveryRadiusMiles)
	if !check.IsWithinRadius {
		return nil, newError(CodeOutsideRadius,
			"address is %.1f miles away; we deliver up to %.1f miles",
			check.DistanceMiles, cfg.DeliveryRadiusMiles)
	}
	deliveryFee := mileageFee(check.DistanceMiles, cfg.FeePerMile)

	// 5–7. subtotal, tax, total
	subtotal := adjusted + addOnCost + deliveryFee
	tax := roundRate(subtotal, cfg.TaxRate)
	total := subtotal + tax

	// 8. minimum-order guard runs on the full total, before the
	// deposit split exists
	if err := checkMinimums(total, req.GuestCount, cfg); err != nil {
		return nil, err
	}

	// 9. deposit is the only rounded half; balance is the exact
	// remainder so deposit+balance == total always
	deposit := roundRate(total, cfg.DepositRate)
	balance := total - deposit

	return &Breakdown{
		MenuCost:         menuCost,
		AdjustedMenuCost: adjusted,
		AddOnCost:        addOnCost,
		DeliveryFee:      deliveryFee,
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            total,
		Deposit:          deposit,
		Balance:          balance,
		DistanceMiles:    check.DistanceMiles,
	}, nil
}

// EstimateDistance answers the standalone address-eligibility check
// the intake form runs before the rest of the form is filled in.
func EstimateDistance(address string, cfg RuleConfig, est distance.Estimator) (distance.Result, error) {
	if cfg.DeliveryRadiusMiles <= 0 {
		return distance.Result{}, newError(CodeInvalidRadius,
			"delivery radius must be positive, got %v", cfg.DeliveryRadiusMiles)
	}
	if est == nil {
		return distance.Result{}, newError(CodeCalculationError,
			"no distance estimator configured")
	}
	return distance.CheckRadius(est.Estimate(address), cfg.DeliveryRadiusMiles), nil
}

func resolveDistance(req *Request, est distance.Estimator) (float64, error) {
	if req.DistanceMiles != nil {
		return *req.DistanceMiles, nil
	}
	if strings.TrimSpace(req.Address) == "" {
		// pickup order, no delivery leg
		return 0, nil
	}
	if est == nil {
		return 0, newError(CodeCalculationError, "no distance estimator configured")
	}
	return est.Estimate(req.Address), nil
}

// roundRate multiplies minor units by a rate and rounds half away
// from zero back to minor units. decimal keeps float noise out of
// the money path.
func roundRate(amount int64, rate float64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(0).
		IntPart()
}

func mileageFee(miles float64, feePerMile int64) int64 {
	return decimal.NewFromFloat(miles).
		Mul(decimal.NewFromInt(feePerMile)).
		Round(0).
		IntPart()
}
