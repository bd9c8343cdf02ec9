package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateRepository(t *testing.T) {
	table, err := domain.NewRateTable(map[string]map[string]float64{
		"USD": {"EUR": 0.92},
		"EUR": {"USD": 1.08},
	})
	require.NoError(t, err)
	repo := memory.NewRepositoryProvider(table).ExchangeRateRepo
	ctx := context.Background()

	t.Run("found normalizes codes", func(t *testing.T) {
		rate, err := repo.FindExchangeRate(ctx, " usd", "Eur ")
		require.NoError(t, err)
		assert.Equal(t, &domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: 0.92}, rate)
	})

	t.Run("miss is not found", func(t *testing.T) {
		rate, err := repo.FindExchangeRate(ctx, "USD", "GBP")
		assert.Nil(t, rate)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "USD->GBP")
	})

	t.Run("list base currencies", func(t *testing.T) {
		codes, err := repo.ListBaseCurrencies(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"EUR", "USD"}, codes)
	})
}
