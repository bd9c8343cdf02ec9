package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents the rate between two currencies as stored in the rate table.
type ExchangeRate struct {
	FromCurrencyCode string  `json:"fromCurrencyCode"`
	ToCurrencyCode   string  `json:"toCurrencyCode"`
	Rate             float64 `json:"rate"`
}

// Conversion is the result of applying an ExchangeRate to an amount.
type Conversion struct {
	ExchangeRate
	Amount    float64         `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
}

// NormalizeCurrencyCode trims and uppercases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RateTable is the base currency -> target currency -> rate mapping.
// It is built once by NewRateTable and never modified afterwards, so it can be
// shared between goroutines without locking.
type RateTable struct {
	rates map[string]map[string]float64
	pairs int
}

// NewRateTable validates raw and returns an immutable copy of it.
// Currency codes are normalized to uppercase. Every rate must be finite and
// strictly positive, and codes must not collide after normalization.
func NewRateTable(raw map[string]map[string]float64) (*RateTable, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("rate table is empty")
	}

	t := &RateTable{rates: make(map[string]map[string]float64, len(raw))}
	for base, targets := range raw {
		from := NormalizeCurrencyCode(base)
		if from == "" {
			return nil, fmt.Errorf("empty base currency code")
		}
		if _, dup := t.rates[from]; dup {
			return nil, fmt.Errorf("duplicate base currency code %q", from)
		}

		row := make(map[string]float64, len(targets))
		for target, rate := range targets {
			to := NormalizeCurrencyCode(target)
			if to == "" {
				return nil, fmt.Errorf("empty target currency code under %q", from)
			}
			if _, dup := row[to]; dup {
				return nil, fmt.Errorf("duplicate target currency code %q under %q", to, from)
			}
			if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
				return nil, fmt.Errorf("rate %s->%s must be a finite positive number, got %v", from, to, rate)
			}
			row[to] = rate
		}
		t.rates[from] = row
		t.pairs += len(row)
	}

	return t, nil
}

// Lookup returns the rate for from -> to. Codes are matched case-insensitively.
// A miss at either level reports ok == false.
func (t *RateTable) Lookup(from, to string) (float64, bool) {
	row, ok := t.rates[NormalizeCurrencyCode(from)]
	if !ok {
		return 0, false
	}
	rate, ok := row[NormalizeCurrencyCode(to)]
	return rate, ok
}

// BaseCurrencies returns the sorted base currency codes that have at least one rate.
func (t *RateTable) BaseCurrencies() []string {
	codes := make([]string, 0, len(t.rates))
	for code, row := range t.rates {
		if len(row) > 0 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of base currencies.
func (t *RateTable) Len() int { return len(t.rates) }

// Pairs returns the number of from/to pairs.
func (t *RateTable) Pairs() int { return t.pairs }
