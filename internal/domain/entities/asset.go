package entities

import "time"

// Asset represents one priced cryptocurrency at a point in time. Instances
// are built fresh on every fetch cycle and never mutated afterwards; a new
// cycle supersedes the previous result set wholesale.
type Asset struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	PriceUSD          float64   `json:"price_usd"`
	PriceBTC          float64   `json:"price_btc"`
	PercentChange24h  float64   `json:"percent_change_24h,omitempty"`
	MarketCap         float64   `json:"market_cap,omitempty"`
	Volume24h         float64   `json:"volume_24h,omitempty"`
	CirculatingSupply float64   `json:"circulating_supply,omitempty"`
	FetchedAt         time.Time `json:"fetched_at"`
}

// NewAsset creates an asset with its USD price populated. The BTC-denominated
// price is left at zero; the orchestrator derives it once BTC's USD price is
// known.
func NewAsset(id, symbol, name string, priceUSD float64, fetchedAt time.Time) *Asset {
	return &Asset{
		ID:        id,
		Symbol:    symbol,
		Name:      name,
		PriceUSD:  priceUSD,
		FetchedAt: fetchedAt,
	}
}

// WithBTCPrice returns a copy of the asset with the BTC-denominated price set.
func (a *Asset) WithBTCPrice(priceBTC float64) *Asset {
	derived := *a
	derived.PriceBTC = priceBTC
	return &derived
}
