// Package pricing derives the displayed plan prices from the billing period.
package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPeriod is returned for billing periods other than annual or monthly.
var ErrUnknownPeriod = errors.New("unknown billing period")

// Currency is the symbol every price is shown in.
const Currency = "₹"

// BillingPeriod selects which rate table the plans are priced from.
// The zero value is Annual.
type BillingPeriod int

const (
	Annual BillingPeriod = iota
	Monthly
)

func (p BillingPeriod) String() string {
	if p == Monthly {
		return "monthly"
	}
	return "annual"
}

// Toggle flips between Annual and Monthly.
func (p BillingPeriod) Toggle() BillingPeriod {
	if p == Annual {
		return Monthly
	}
	return Annual
}

// ParseBillingPeriod accepts "annual", "yearly" or "monthly". An empty
// string is the default period.
func ParseBillingPeriod(s string) (BillingPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "annual", "yearly":
		return Annual, nil
	case "monthly":
		return Monthly, nil
	}
	return Annual, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Prices is the monthly price of each plan for one billing period.
type Prices struct {
	Starter int `json:"starter"`
	Pro     int `json:"pro"`
	Scale   int `json:"scale"`
}

var rates = map[BillingPeriod]Prices{
	Annual:  {Starter: 0, Pro: 199, Scale: 499},
	Monthly: {Starter: 0, Pro: 249, Scale: 599},
}

// PricesFor returns the per-month prices billed under p.
func PricesFor(p BillingPeriod) Prices {
	if p == Monthly {
		return rates[Monthly]
	}
	return rates[Annual]
}

// For returns the price of one plan.
func (p Prices) For(id PlanID) int {
	switch id {
	case Pro:
		return p.Pro
	case Scale:
		return p.Scale
	}
	return p.Starter
}
