package pricing

// MinPerGuest is the floor every accepted order must clear per head,
// in minor units. Orders under this are not worth staffing an event.
const MinPerGuest int64 = 1000

// checkMinimums decides whether the event is worth accepting. It
// needs the fully taxed total, which is why it cannot live in
// Validate. Both floors must pass; a total exactly on a floor is
// accepted.
func checkMinimums(total int64, guests int, cfg RuleConfig) error {
	if total < cfg.MinimumOrder {
		return newError(CodeBelowMinimumOrder,
			"order total %s is below our %s minimum",
			FormatUSD(total), FormatUSD(cfg.MinimumOrder))
	}

	// compare as total >= floor*guests to dodge integer-division
	// truncation on the per-guest average
	if total < MinPerGuest*int64(guests) {
		return newError(CodeBelowMinPerGuest,
			"order works out to %s per guest; we require at least %s per guest",
			FormatUSD(total/int64(guests)), FormatUSD(MinPerGuest))
	}

	return nil
}
