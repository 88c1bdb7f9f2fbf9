package coinbase

// spotPriceResponse is the body of GET /prices/{SYMBOL}-USD/spot.
// The amount arrives as a decimal string.
type spotPriceResponse struct {
	Data struct {
		Base     string `json:"base"`
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	} `json:"data"`
}
