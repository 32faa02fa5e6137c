package pricing

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1,234.56"},
		{66960, "$669.60"},
		{100000000, "$1,000,000.00"},
		{-2500, "-$25.00"},
	}

	for _, c := range cases {
		if got := FormatUSD(c.minor); got != c.want {
			t.Fatalf("FormatUSD(%d): expected %q, got %q", c.minor, c.want, got)
		}
	}
}

func TestDisplayLinesSkipZeroDelivery(t *testing.T) {
	b := &Breakdown{
		AdjustedMenuCost: 60000,
		Subtotal:         60000,
		Tax:              4800,
		Total:            64800,
		Deposit:          32400,
		Balance:          32400,
	}

	for _, line := range b.DisplayLines() {
		if line.Label == "Delivery" || line.Label == "Add-ons" {
			t.Fatalf("pickup quote should not show a %s line", line.Label)
		}
	}
}

func TestDisplayLinesItemized(t *testing.T) {
	b := &Breakdown{
		AdjustedMenuCost: 60000,
		AddOnCost:        3000,
		DeliveryFee:      2000,
		Subtotal:         65000,
		Tax:              5200,
		Total:            70200,
		Deposit:          35100,
		Balance:          35100,
	}

	lines := b.DisplayLines()
	if len(lines) != 8 {
		t.Fatalf("expected 8 display lines, got %d", len(lines))
	}
	if lines[len(lines)-1].Amount != "$351.00" {
		t.Fatalf("expected balance line $351.00, got %s", lines[len(lines)-1].Amount)
	}
}
