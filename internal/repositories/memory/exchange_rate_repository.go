package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
)

// ExchangeRateRepository serves exchange rates from an immutable in-memory rate table.
type ExchangeRateRepository struct {
	table *domain.RateTable
}

// newExchangeRateRepository creates a repository over table.
func newExchangeRateRepository(table *domain.RateTable) *ExchangeRateRepository {
	return &ExchangeRateRepository{table: table}
}

// FindExchangeRate looks up the from -> to rate.
func (r *ExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	from := domain.NormalizeCurrencyCode(fromCurrencyCode)
	to := domain.NormalizeCurrencyCode(toCurrencyCode)

	rate, ok := r.table.Lookup(from, to)
	if !ok {
		return nil, fmt.Errorf("%w: exchange rate %s->%s", apperrors.ErrNotFound, from, to)
	}

	return &domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rate,
	}, nil
}

// ListBaseCurrencies returns the base currencies present in the table.
func (r *ExchangeRateRepository) ListBaseCurrencies(ctx context.Context) ([]string, error) {
	return r.table.BaseCurrencies(), nil
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)
