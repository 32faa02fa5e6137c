package pricing

import "fmt"

// FormatUSD renders minor units as a customer-facing dollar string,
// e.g. 123456 -> "$1,234.56". Display only — no business rules.
func FormatUSD(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(minor/100), minor%100)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

type DisplayLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// DisplayLines is the itemized view used by the quote form and the
// confirmation email template.
func (b *Breakdown) DisplayLines() []DisplayLine {
	lines := []DisplayLine{
		{"Menu", FormatUSD(b.AdjustedMenuCost)},
	}
	if b.AddOnCost > 0 {
		lines = append(lines, DisplayLine{"Add-ons", FormatUSD(b.AddOnCost)})
	}
	if b.DeliveryFee > 0 {
		lines = append(lines, DisplayLine{"Delivery", FormatUSD(b.DeliveryFee)})
	}
	lines = append(lines,
		DisplayLine{"Subtotal", FormatUSD(b.Subtotal)},
		DisplayLine{"Tax", FormatUSD(b.Tax)},
		DisplayLine{"Total", FormatUSD(b.Total)},
		DisplayLine{"Deposit due", FormatUSD(b.Deposit)},
		DisplayLine{"Balance due", FormatUSD(b.Balance)},
	)
	return lines
}
