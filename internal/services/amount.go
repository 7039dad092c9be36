package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// plainAmount is digits with an optional fractional part; signs, exponents and
// grouping separators are rejected before the value reaches decimal
var plainAmount = regexp.MustCompile(`^[0-9]+(?:\.([0-9]+))?$`)

const maxAmountDecimals = 2

// ParseAmount reads a user-entered amount such as "10,50" or "10.50".
// A comma is taken as the decimal separator. At most two decimal places are
// accepted and the value must be greater than zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, &InvalidAmountError{Input: raw, Reason: "empty"}
	}

	normalized := strings.Replace(trimmed, ",", ".", 1)
	match := plainAmount.FindStringSubmatch(normalized)
	if match == nil {
		return decimal.Zero, &InvalidAmountError{Input: raw, Reason: "not a number"}
	}
	if len(match[1]) > maxAmountDecimals {
		return decimal.Zero, &InvalidAmountError{Input: raw, Reason: "more than two decimal places"}
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, &InvalidAmountError{Input: raw, Reason: "not a number"}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &InvalidAmountError{Input: raw, Reason: "must be greater than zero"}
	}

	return amount, nil
}
