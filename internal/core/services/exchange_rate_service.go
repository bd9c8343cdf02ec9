package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/utils"
)

// ConversionPrecision is the number of decimal places converted amounts are rounded to.
const ConversionPrecision int32 = 6

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo: rateRepo,
	}
}

// GetExchangeRate retrieves the exchange rate for a given currency pair.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode, toCode, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Exchange rate not in table", slog.String("from", fromCode), slog.String("to", toCode))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find exchange rate", slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	return rate, nil
}

// ConvertAmount converts amount using the fromCode -> toCode rate, rounding the
// result to ConversionPrecision places (half away from zero).
func (s *exchangeRateService) ConvertAmount(ctx context.Context, fromCode, toCode string, amount float64) (*domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}

	rate, err := s.GetExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	converted := utils.MultiplyAndRound(amount, rate.Rate, ConversionPrecision)
	// The response carries converted as a float64; a product past its range
	// cannot be encoded.
	if math.IsInf(converted.InexactFloat64(), 0) {
		return nil, fmt.Errorf("%w: amount out of range", apperrors.ErrValidation)
	}

	return &domain.Conversion{
		ExchangeRate: *rate,
		Amount:       amount,
		Converted:    converted,
	}, nil
}

func normalizePair(fromCode, toCode string) (string, string, error) {
	fromCode = domain.NormalizeCurrencyCode(fromCode)
	toCode = domain.NormalizeCurrencyCode(toCode)
	if fromCode == "" || toCode == "" {
		return "", "", fmt.Errorf("%w: from and to required", apperrors.ErrValidation)
	}
	return fromCode, toCode, nil
}
