package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
)

// currencyService exposes the currencies known to the rate table.
type currencyService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(rateRepo portsrepo.ExchangeRateReader) portssvc.CurrencySvcFacade {
	return &currencyService{rateRepo: rateRepo}
}

// ListCurrencies returns the sorted base currency codes.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]string, error) {
	codes, err := s.rateRepo.ListBaseCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return codes, nil
}
