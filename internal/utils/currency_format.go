package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultAmount is used when a conversion request carries no amount.
const DefaultAmount = 1.0

// ParseAmount parses a user supplied amount. An empty value yields DefaultAmount.
// Only decimal notation is accepted: blank, hex and otherwise non-numeric or
// non-finite values are rejected with apperrors.ErrValidation.
func ParseAmount(raw string) (float64, error) {
	if raw == "" {
		return DefaultAmount, nil
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || isHexLiteral(raw) {
		return 0, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}
	return amount, nil
}

// MultiplyAndRound returns amount * rate rounded to precision decimal places.
// Both operands are taken at their shortest decimal representation, so
// 100 * 0.92 is exactly 92. Halves are rounded away from zero.
// Example: 2.5 * 0.000001 with precision 6 returns 0.000003
func MultiplyAndRound(amount, rate float64, precision int32) decimal.Decimal {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(precision)
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
