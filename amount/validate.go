package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAmount runs every admission check for sending value against
// reference and returns each failure. An empty result means the chain will
// recognise the transfer.
func ValidateAmount(value, reference string, decimals int, dustThreshold decimal.Decimal) []error {
	if decimals < 0 {
		return []error{ErrInvalidDecimals}
	}
	parsed, err := parse(value)
	if err != nil {
		return []error{ErrMalformedAmount}
	}
	if !isReference(reference) {
		return []error{ErrMalformedReference}
	}
	if decimals == 0 {
		return []error{ErrNoReferencePrecision}
	}

	failures := []error{}
	if len(parsed.fraction) > decimals && strings.Trim(parsed.fraction[decimals:], "0") != "" {
		failures = append(failures, ErrExcessPrecision)
	}

	effective := EffectiveReference(reference, decimals)
	fraction := parsed.scale(decimals).fraction
	if fraction[len(fraction)-len(effective):] != effective {
		failures = append(failures, ErrAmountMismatch)
	}

	exact, err := decimal.NewFromString(parsed.String())
	if err != nil {
		return append(failures, ErrMalformedAmount)
	}
	if !exact.GreaterThan(dustThreshold) {
		failures = append(failures, ErrBelowDustThreshold)
	}
	return failures
}
