package pricing

// RuleConfig holds the tenant's business rules for one calculation.
// The engine validates it on every call and never mutates it.
type RuleConfig struct {
	AppetiteMultipliers map[string]float64 `json:"appetite_multipliers"`
	TaxRate             float64            `json:"tax_rate"`
	DepositRate         float64            `json:"deposit_rate"`
	DeliveryRadiusMiles float64            `json:"delivery_radius_miles"`
	FeePerMile          int64              `json:"fee_per_mile"`
	MinimumOrder        int64              `json:"minimum_order"`
	BaseCurrency        string             `json:"base_currency"`
}

// MenuSelection is one protein + side line on the quote.
type MenuSelection struct {
	ProteinRef string `json:"protein_ref"`
	SideRef    string `json:"side_ref"`
	Quantity   int    `json:"quantity"`
}

type AddOnSelection struct {
	AddOnRef string `json:"addon_ref"`
	Quantity int    `json:"quantity"`
}

// Request is everything the engine needs for one quote.
// Either Address or DistanceMiles may be set; both empty means pickup.
type Request struct {
	GuestCount    int              `json:"guest_count"`
	AppetiteLevel string           `json:"appetite_level"`
	Address       string           `json:"address"`
	DistanceMiles *float64         `json:"distance_miles,omitempty"`
	Selections    []MenuSelection  `json:"selections"`
	AddOns        []AddOnSelection `json:"addons"`
}

// Variant is one priced option of a menu item.
type Variant struct {
	Currency    string `json:"currency"`
	AmountMinor int64  `json:"amount_minor"`
}

type Item struct {
	Ref      string    `json:"ref"`
	Name     string    `json:"name"`
	Category string    `json:"category"` // protein | side
	Variants []Variant `json:"variants"`
}

type AddOn struct {
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
	Currency    string `json:"currency"`
	AmountMinor int64  `json:"amount_minor"`
}

// Catalog is an immutable snapshot of priced items for ONE calculation.
// The engine only reads it; callers fetch it before the call.
type Catalog struct {
	Items  map[string]Item  `json:"items"`
	AddOns map[string]AddOn `json:"addons"`
}

// Breakdown is the itemized result. All amounts are integer
// minor currency units; deposit + balance always equals total.
type Breakdown struct {
	MenuCost         int64 `json:"menu_cost"`
	AdjustedMenuCost int64 `json:"adjusted_menu_cost"`
	AddOnCost        int64 `json:"addon_cost"`
	DeliveryFee      int64 `json:"delivery_fee"`
	Subtotal         int64 `json:"subtotal"`
	Tax              int64 `json:"tax"`
	Total            int64 `json:"total"`
	Deposit          int64 `json:"deposit"`
	Balance          int64 `json:"balance"`

	DistanceMiles float64 `json:"distance_miles"`
}
