package pricing

import (
	"encoding/json"
	"net/http"

	"teamfortasks/internal/pricing"
)

type response struct {
	Billing string         `json:"billing"`
	Prices  pricing.Prices `json:"prices"`
	Plans   []pricing.Plan `json:"plans"`
}

// Handler returns the plans priced for ?billing=annual|monthly as JSON.
func Handler(w http.ResponseWriter, r *http.Request) {
	period, err := pricing.ParseBillingPeriod(r.URL.Query().Get("billing"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{
		Billing: period.String(),
		Prices:  pricing.PricesFor(period),
		Plans:   pricing.Plans(period),
	})
}
