package pricing

import "strings"

// priceOf resolves one menu item's unit price in minor units.
// If the item is priced in several currencies, the configured base
// currency wins; otherwise the first priced variant is used. There
// is NO conversion here: a mixed-currency catalog fails closed
// rather than mixing amounts.
func priceOf(item Item, baseCurrency string) (int64, error) {
	if len(item.Variants) == 0 {
		return 0, newError(CodeNoProductPricing,
			"no pricing configured for %q", item.Ref)
	}

	if baseCurrency != "" {
		for _, v := range item.Variants {
			if strings.EqualFold(v.Currency, baseCurrency) {
				return validAmount(item.Ref, v.AmountMinor)
			}
		}
	}

	return validAmount(item.Ref, item.Variants[0].AmountMinor)
}

func addOnPrice(a AddOn) (int64, error) {
	return validAmount(a.Ref, a.AmountMinor)
}

func validAmount(ref string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, newError(CodeNoProductPricing,
			"no pricing configured for %q", ref)
	}
	return amount, nil
}
