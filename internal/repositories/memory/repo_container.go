package memory

import (
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories around a loaded rate table.
func NewRepositoryProvider(table *domain.RateTable) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newExchangeRateRepository(table),
	}
}
