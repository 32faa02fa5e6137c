package pricing

import "testing"

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(req *Request, cfg *RuleConfig)
		code   Code
	}{
		{
			"zero guests",
			func(req *Request, cfg *RuleConfig) { req.GuestCount = 0 },
			CodeInvalidGuestCount,
		},
		{
			"negative distance",
			func(req *Request, cfg *RuleConfig) { req.DistanceMiles = miles(-1) },
			CodeInvalidDistance,
		},
		{
			"tax rate above 1",
			func(req *Request, cfg *RuleConfig) { cfg.TaxRate = 1.5 },
			CodeInvalidTaxRate,
		},
		{
			"negative deposit rate",
			func(req *Request, cfg *RuleConfig) { cfg.DepositRate = -0.1 },
			CodeInvalidDepositPct,
		},
		{
			"zero radius",
			func(req *Request, cfg *RuleConfig) { cfg.DeliveryRadiusMiles = 0 },
			CodeInvalidRadius,
		},
		{
			"negative fee per mile",
			func(req *Request, cfg *RuleConfig) { cfg.FeePerMile = -1 },
			CodeInvalidFeePerMile,
		},
		{
			"negative minimum order",
			func(req *Request, cfg *RuleConfig) { cfg.MinimumOrder = -100 },
			CodeInvalidMinimum,
		},
		{
			"unknown appetite level",
			func(req *Request, cfg *RuleConfig) { req.AppetiteLevel = "ravenous" },
			CodeInvalidHungerLevel,
		},
		{
			"zero quantity",
			func(req *Request, cfg *RuleConfig) { req.Selections[0].Quantity = 0 },
			CodeInvalidMenuQty,
		},
		{
			"unknown protein",
			func(req *Request, cfg *RuleConfig) { req.Selections[0].ProteinRef = "tofu" },
			CodeProteinNotFound,
		},
		{
			"unknown side",
			func(req *Request, cfg *RuleConfig) { req.Selections[0].SideRef = "fries" },
			CodeSideNotFound,
		},
		{
			"unpriced protein",
			func(req *Request, cfg *RuleConfig) { req.Selections[0].ProteinRef = "unpriced-wings" },
			CodeNoProductPricing,
		},
		{
			"zero add-on quantity",
			func(req *Request, cfg *RuleConfig) {
				req.AddOns = []AddOnSelection{{AddOnRef: "cornbread", Quantity: 0}}
			},
			CodeInvalidAddOnQty,
		},
		{
			"unknown add-on",
			func(req *Request, cfg *RuleConfig) {
				req.AddOns = []AddOnSelection{{AddOnRef: "sweet-tea", Quantity: 1}}
			},
			CodeAddOnNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := baseRequest()
			cfg := testConfig()
			c.mutate(req, &cfg)

			err := Validate(req, cfg, testCatalog())
			wantCode(t, err, c.code)
		})
	}
}

func TestValidateAcceptsBaseRequest(t *testing.T) {
	if err := Validate(baseRequest(), testConfig(), testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// config problems must surface even when the selection list is also
// broken: the checklist validates rules before catalog lookups
func TestValidateChecklistOrder(t *testing.T) {
	req := baseRequest()
	req.AppetiteLevel = "ravenous"
	req.Selections[0].ProteinRef = "tofu"

	err := Validate(req, testConfig(), testCatalog())
	wantCode(t, err, CodeInvalidHungerLevel)
}

func TestConfigIssueClassification(t *testing.T) {
	operator := newError(CodeInvalidTaxRate, "")
	customer := newError(CodeProteinNotFound, "")

	if !ConfigIssue(operator) {
		t.Fatal("tax rate errors should be flagged for operators")
	}
	if ConfigIssue(customer) {
		t.Fatal("catalog reference errors are customer-side")
	}
}
