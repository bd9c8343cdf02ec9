package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves an exchange rate between two currencies.
	// It returns apperrors.ErrNotFound when the pair is not known.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListBaseCurrencies returns the sorted codes of currencies that have rates.
	ListBaseCurrencies(ctx context.Context) ([]string, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces.
// Rates are loaded once at startup, so there is no writer.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
}
