package services

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies returns the base currency codes that have at least one rate.
	ListCurrencies(ctx context.Context) ([]string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves an exchange rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateConverterSvc converts amounts between currencies.
type ExchangeRateConverterSvc interface {
	// ConvertAmount multiplies amount by the fromCode -> toCode rate.
	ConvertAmount(ctx context.Context, fromCode, toCode string, amount float64) (*domain.Conversion, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateConverterSvc
}
