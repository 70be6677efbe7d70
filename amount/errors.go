package amount

import "errors"

var (
	// ErrMalformedAmount is returned when an amount is not of the form digits[.digits]
	ErrMalformedAmount = errors.New("amount is not a valid fixed-point decimal")
	// ErrMalformedReference is returned when a reference contains anything other than digits
	ErrMalformedReference = errors.New("reference must contain decimal digits only")
	// ErrExcessPrecision is returned when an amount carries more fractional digits than the asset supports
	ErrExcessPrecision = errors.New("amount has more decimal places than the asset supports")
	// ErrAmountMismatch is returned when the amount's tail digits do not encode the reference
	ErrAmountMismatch = errors.New("amount does not encode the reference")
	// ErrBelowDustThreshold is returned when an amount is not strictly above the chain dust threshold
	ErrBelowDustThreshold = errors.New("amount is at or below the dust threshold")
	// ErrInvalidDecimals is returned for a negative asset precision
	ErrInvalidDecimals = errors.New("decimals must not be negative")
	// ErrNoReferencePrecision is returned when an asset has no decimal places to carry a reference
	ErrNoReferencePrecision = errors.New("asset has no decimal places to carry a reference")
)
