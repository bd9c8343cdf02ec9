package services

import (
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.ExchangeRateRepo),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo),
	}
}
