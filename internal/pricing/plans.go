package pricing

import "strconv"

// PlanID identifies a subscription tier.
type PlanID int

const (
	Starter PlanID = iota
	Pro
	Scale
)

func (id PlanID) String() string {
	switch id {
	case Pro:
		return "pro"
	case Scale:
		return "scale"
	}
	return "starter"
}

// Plan is one pricing card.
type Plan struct {
	ID           PlanID   `json:"-"`
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	MonthlyPrice int      `json:"monthly_price"`
	Perks        []string `json:"perks"`
	Highlighted  bool     `json:"highlighted"`
	CTALabel     string   `json:"cta"`
}

// PriceLabel renders the price as shown on the card, e.g. "₹199/month".
func (p Plan) PriceLabel() string {
	return p.Amount() + "/month"
}

// Amount renders the price without the period suffix, e.g. "₹199".
func (p Plan) Amount() string {
	return Currency + strconv.Itoa(p.MonthlyPrice)
}

var catalog = []Plan{
	{
		ID:       Starter,
		Name:     "Starter",
		Tagline:  "For one store",
		Perks:    []string{"3 members", "Checklists & templates", "Email support"},
		CTALabel: "Start free",
	},
	{
		ID:          Pro,
		Name:        "Pro",
		Tagline:     "Growing teams",
		Perks:       []string{"Unlimited members", "Role‑based access", "WhatsApp alerts", "Export to Sheets/Tally"},
		Highlighted: true,
		CTALabel:    "Start 14‑day trial",
	},
	{
		ID:       Scale,
		Name:     "Scale",
		Tagline:  "Multi‑store ops",
		Perks:    []string{"HQ dashboards", "SLAs & escalations", "API & SSO", "Priority support"},
		CTALabel: "Talk to sales",
	},
}

// Plans returns the three plans priced for period, in display order.
func Plans(period BillingPeriod) []Plan {
	prices := PricesFor(period)
	plans := make([]Plan, len(catalog))
	for i, p := range catalog {
		p.Perks = append([]string(nil), p.Perks...)
		p.MonthlyPrice = prices.For(p.ID)
		plans[i] = p
	}
	return plans
}
