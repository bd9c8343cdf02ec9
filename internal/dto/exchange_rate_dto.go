package dto

import (
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// RateQuery binds the query string of GET /rate.
type RateQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// ConvertQuery binds the query string of GET /convert.
// Amount is kept as text so that a non-numeric value can be reported as a
// validation error instead of a binding error.
type ConvertQuery struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Amount string `form:"amount"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// ConversionResponse is returned by GET /convert.
type ConversionResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		From: rate.FromCurrencyCode,
		To:   rate.ToCurrencyCode,
		Rate: rate.Rate,
	}
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		From:      conv.FromCurrencyCode,
		To:        conv.ToCurrencyCode,
		Amount:    conv.Amount,
		Rate:      conv.Rate,
		Converted: conv.Converted.InexactFloat64(),
	}
}
