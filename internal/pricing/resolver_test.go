package pricing

import "testing"

func TestPriceOfPrefersBaseCurrency(t *testing.T) {
	item := Item{
		Ref: "brisket",
		Variants: []Variant{
			{Currency: "cad", AmountMinor: 2400},
			{Currency: "usd", AmountMinor: 1800},
		},
	}

	price, err := priceOf(item, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 1800 {
		t.Fatalf("expected the usd variant 1800, got %d", price)
	}
}

func TestPriceOfFallsBackToFirstVariant(t *testing.T) {
	item := Item{
		Ref:      "ribs",
		Variants: []Variant{{Currency: "cad", AmountMinor: 2400}},
	}

	price, err := priceOf(item, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 2400 {
		t.Fatalf("expected first-variant fallback 2400, got %d", price)
	}
}

func TestPriceOfNoVariants(t *testing.T) {
	_, err := priceOf(Item{Ref: "wings"}, "usd")
	wantCode(t, err, CodeNoProductPricing)
}

func TestPriceOfZeroAmount(t *testing.T) {
	item := Item{
		Ref:      "wings",
		Variants: []Variant{{Currency: "usd", AmountMinor: 0}},
	}
	_, err := priceOf(item, "usd")
	wantCode(t, err, CodeNoProductPricing)
}

func TestRoundRateHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		amount int64
		rate   float64
		want   int64
	}{
		{1000, 0.5, 500},
		{1001, 0.5, 501},  // 500.5 rounds up
		{999, 0.065, 65},  // 64.935 rounds up
		{100, 0.005, 1},   // 0.5 rounds away from zero
		{62000, 0.08, 4960},
	}

	for _, c := range cases {
		if got := roundRate(c.amount, c.rate); got != c.want {
			t.Fatalf("roundRate(%d, %v): expected %d, got %d",
				c.amount, c.rate, c.want, got)
		}
	}
}

func TestMileageFee(t *testing.T) {
	if got := mileageFee(10, 200); got != 2000 {
		t.Fatalf("expected 2000, got %d", got)
	}
	// 12.3 miles at 175/mile = 2152.5, rounds up
	if got := mileageFee(12.3, 175); got != 2153 {
		t.Fatalf("expected 2153, got %d", got)
	}
}
