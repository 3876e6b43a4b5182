package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// rateSeparator is the literal token splitting a conversion formula into its
// source-cell expression and its numeric rate operand, e.g. "=A5 * 1.08".
const rateSeparator = " * "

// RateCache resolves currency conversion rates for one sheet's processing
// pass. The first row carrying a currency code fixes the rate for every
// later row with that code in the same sheet; later formulas are ignored.
// Caches are per sheet and discarded afterwards, never shared.
type RateCache struct {
	rates map[string]float64
}

// NewRateCache returns an empty per-sheet rate cache.
func NewRateCache() *RateCache {
	return &RateCache{rates: make(map[string]float64)}
}

// Resolve returns the conversion rate for the given currency code, parsing
// formula on first encounter. The formula must contain the " * " separator;
// a blank right-hand operand means a rate of 1.0. A missing separator or a
// non-numeric operand is a fatal parsing error for the current run.
func (c *RateCache) Resolve(code, formula string) (float64, error) {
	if rate, ok := c.rates[code]; ok {
		return rate, nil
	}

	parts := strings.SplitN(formula, rateSeparator, 2)
	if len(parts) < 2 {
		return 0, errors.NewParsingError(
			fmt.Sprintf("conversion formula %q is missing the %q separator", formula, rateSeparator), nil).
			WithContext("currency", code)
	}

	rate := 1.0
	if operand := parts[1]; !domain.IsBlankCell(operand) {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(operand), 64)
		if err != nil {
			return 0, errors.NewParsingError(
				fmt.Sprintf("conversion formula %q has a non-numeric rate operand", formula), err).
				WithContext("currency", code)
		}
		rate = parsed
	}

	c.rates[code] = rate
	return rate, nil
}

// Len returns the number of distinct currency codes resolved so far.
func (c *RateCache) Len() int {
	return len(c.rates)
}
