package dto

// ListCurrenciesResponse lists the base currencies that have rates.
type ListCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Currencies int    `json:"currencies"`
}
