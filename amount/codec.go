// Package amount encodes reference IDs into the low-order decimal digits of an
// asset amount. All arithmetic is done on ASCII digit strings so that assets
// with 18 decimals keep every digit.
package amount

import (
	"strings"
)

// Direction selects whether EmbedAndRaise settles above or below the desired amount
type Direction int

const (
	// Up returns the smallest encoded amount strictly greater than the desired amount
	Up Direction = iota
	// Down returns the greatest encoded amount less than or equal to the desired amount
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// fixed is a non-negative decimal split into its integer and fractional digits.
// integer never carries leading zeros (zero is "0").
type fixed struct {
	integer  string
	fraction string
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isReference(reference string) bool {
	return reference != "" && isDigits(reference)
}

func normalizeInteger(integer string) string {
	integer = strings.TrimLeft(integer, "0")
	if integer == "" {
		return "0"
	}
	return integer
}

func parse(value string) (fixed, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fixed{}, ErrMalformedAmount
	}
	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return fixed{}, ErrMalformedAmount
	}
	integer, fraction := parts[0], ""
	if len(parts) == 2 {
		fraction = parts[1]
	}
	if integer == "" && fraction == "" {
		return fixed{}, ErrMalformedAmount
	}
	if !isDigits(integer) || !isDigits(fraction) {
		return fixed{}, ErrMalformedAmount
	}
	return fixed{integer: normalizeInteger(integer), fraction: fraction}, nil
}

// scale cuts or zero-pads the fraction to exactly decimals digits. It never rounds.
func (f fixed) scale(decimals int) fixed {
	fraction := f.fraction
	if len(fraction) > decimals {
		fraction = fraction[:decimals]
	} else {
		fraction += strings.Repeat("0", decimals-len(fraction))
	}
	return fixed{integer: f.integer, fraction: fraction}
}

func (f fixed) String() string {
	if f.fraction == "" {
		return f.integer
	}
	return f.integer + "." + f.fraction
}

func compareFixed(a, b fixed) int {
	width := len(a.fraction)
	if len(b.fraction) > width {
		width = len(b.fraction)
	}
	a, b = a.scale(width), b.scale(width)
	if len(a.integer) != len(b.integer) {
		if len(a.integer) < len(b.integer) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.integer, b.integer); c != 0 {
		return c
	}
	return strings.Compare(a.fraction, b.fraction)
}

// embed overwrites the last len(reference) fractional digits with reference.
func embed(f fixed, reference string) fixed {
	keep := len(f.fraction) - len(reference)
	return fixed{integer: f.integer, fraction: f.fraction[:keep] + reference}
}

// step moves the digit right before the reference block by one, carrying or
// borrowing leftwards into the integer part. ok is false when a borrow runs
// past the most significant digit.
func step(f fixed, referenceLength int, up bool) (result fixed, ok bool) {
	digits := []byte(f.integer + f.fraction)
	i := len(digits) - referenceLength - 1
	for ; i >= 0; i-- {
		if up {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
			continue
		}
		if digits[i] > '0' {
			digits[i]--
			break
		}
		digits[i] = '9'
	}
	if i < 0 {
		if !up {
			return fixed{}, false
		}
		digits = append([]byte{'1'}, digits...)
	}
	split := len(digits) - len(f.fraction)
	return fixed{
		integer:  normalizeInteger(string(digits[:split])),
		fraction: string(digits[split:]),
	}, true
}

// Truncate keeps at most decimals fractional digits, discarding the rest, and
// zero-pads shorter fractions to exactly decimals digits.
func Truncate(value string, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrInvalidDecimals
	}
	parsed, err := parse(value)
	if err != nil {
		return "", err
	}
	return parsed.scale(decimals).String(), nil
}

// EffectiveReference is the part of reference that fits into decimals digits
func EffectiveReference(reference string, decimals int) string {
	if decimals < 0 {
		return ""
	}
	if len(reference) > decimals {
		return reference[:decimals]
	}
	return reference
}

// ExtractTail returns the last referenceLength fractional digits of value once
// truncated or padded to decimals digits.
func ExtractTail(value string, decimals, referenceLength int) (string, error) {
	if decimals < 0 {
		return "", ErrInvalidDecimals
	}
	parsed, err := parse(value)
	if err != nil {
		return "", err
	}
	if referenceLength > decimals {
		referenceLength = decimals
	}
	if referenceLength < 0 {
		referenceLength = 0
	}
	fraction := parsed.scale(decimals).fraction
	return fraction[len(fraction)-referenceLength:], nil
}

// MatchesReference reports whether value decodes to reference at the given precision
func MatchesReference(value string, decimals int, reference string) (bool, error) {
	if !isReference(reference) {
		return false, ErrMalformedReference
	}
	if decimals == 0 {
		return false, ErrNoReferencePrecision
	}
	effective := EffectiveReference(reference, decimals)
	tail, err := ExtractTail(value, decimals, len(effective))
	if err != nil {
		return false, err
	}
	return tail == effective, nil
}

// MinimumValidAmount builds the smallest amount with a non-zero digit ahead of
// the reference block. When the reference fills every decimal place the
// reference is cut to fit and prefixed with "1.".
func MinimumValidAmount(reference string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if len(reference) < decimals {
		return "0." + strings.Repeat("0", decimals-len(reference)-1) + "1" + reference
	}
	effective := EffectiveReference(reference, decimals)
	if effective == "" {
		return "1"
	}
	return "1." + effective
}

// EmbedAndRaise writes reference into the tail of desired and moves the digit
// in front of it until the result lies on the requested side of desired.
func EmbedAndRaise(desired, reference string, decimals int, direction Direction) (string, error) {
	result, _, err := embedAndRaise(desired, reference, decimals, direction)
	return result, err
}

func embedAndRaise(desired, reference string, decimals int, direction Direction) (string, int, error) {
	if decimals < 0 {
		return "", 0, ErrInvalidDecimals
	}
	if !isReference(reference) {
		return "", 0, ErrMalformedReference
	}
	if decimals == 0 {
		return "", 0, ErrNoReferencePrecision
	}
	parsed, err := parse(desired)
	if err != nil {
		return "", 0, err
	}

	target := parsed.scale(decimals)
	effective := EffectiveReference(reference, decimals)
	candidate := embed(target, effective)
	steps := 0

	switch direction {
	case Down:
		for compareFixed(candidate, target) > 0 {
			next, ok := step(candidate, len(effective), false)
			steps++
			if !ok {
				return MinimumValidAmount(reference, decimals), steps, nil
			}
			candidate = embed(next, effective)
		}
	default:
		for compareFixed(candidate, target) <= 0 {
			next, _ := step(candidate, len(effective), true)
			steps++
			candidate = embed(next, effective)
		}
	}
	return candidate.String(), steps, nil
}

// Compare returns -1, 0 or 1 comparing a and b digit by digit
func Compare(a, b string) (int, error) {
	left, err := parse(a)
	if err != nil {
		return 0, err
	}
	right, err := parse(b)
	if err != nil {
		return 0, err
	}
	return compareFixed(left, right), nil
}

// ToBaseUnits shifts value by decimals places, e.g. "1.5" at 8 decimals is "150000000"
func ToBaseUnits(value string, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrInvalidDecimals
	}
	parsed, err := parse(value)
	if err != nil {
		return "", err
	}
	scaled := parsed.scale(decimals)
	return normalizeInteger(scaled.integer + scaled.fraction), nil
}
