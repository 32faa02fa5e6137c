package notify

import (
	"bytes"
	"text/template"

	"troybbq/internal/pricing"
	"troybbq/internal/quote"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`Thanks for your catering request!

Quote {{.QuoteID}} for {{.GuestCount}} guests is in. Here is the
itemized breakdown:

{{range .Lines}}  {{printf "%-12s" .Label}} {{.Amount}}
{{end}}
A deposit of {{.Deposit}} reserves your date; the remaining
{{.Balance}} is due on delivery. We'll follow up once the pit
schedule is confirmed.

— Troy BBQ
`))

type confirmationData struct {
	QuoteID    string
	GuestCount int
	Lines      []pricing.DisplayLine
	Deposit    string
	Balance    string
}

// RenderConfirmation builds the plain-text confirmation body for a
// saved quote.
func RenderConfirmation(q *quote.Quote) (string, error) {
	data := confirmationData{
		QuoteID:    q.ID,
		GuestCount: q.Request.GuestCount,
		Lines:      q.Breakdown.DisplayLines(),
		Deposit:    pricing.FormatUSD(q.Breakdown.Deposit),
		Balance:    pricing.FormatUSD(q.Breakdown.Balance),
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
