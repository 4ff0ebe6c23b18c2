// Package optarg validates numeric option arguments: bounded decimal
// integers and power-of-two sizes given with optional binary suffixes.
package optarg

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

var (
	// ErrSyntax reports text that is not a non-negative decimal number.
	ErrSyntax = errors.New("invalid number")
	// ErrRange reports a number that overflows or falls outside its bounds.
	ErrRange = errors.New("value out of range")
	// ErrNotPowerOfTwo reports a size that is not an exact power of two.
	ErrNotPowerOfTwo = errors.New("not a power of two")
)

// ParseBounded parses text as a non-negative decimal integer within [lo, hi].
func ParseBounded(text string, lo, hi int) (int, error) {
	n, err := parseDecimal(text, 31)
	if err != nil {
		return 0, err
	}
	if err := CheckBounds(int(n), lo, hi); err != nil {
		return 0, fmt.Errorf("%q: %w", text, err)
	}
	return int(n), nil
}

// CheckBounds reports ErrRange unless lo <= n <= hi.
func CheckBounds(n, lo, hi int) error {
	if n < lo || n > hi {
		return fmt.Errorf("%d not in %d..%d: %w", n, lo, hi, ErrRange)
	}
	return nil
}

// ParseExponent parses a size such as "512", "8k" or "1M" and returns its
// base-two exponent, which must lie within [lo, hi]. The suffixes k, M and G
// (either case) multiply by 1024, 1024^2 and 1024^3.
func ParseExponent(text string, lo, hi int) (int, error) {
	digits, shift := text, 0
	if n := len(text); n > 0 {
		switch text[n-1] {
		case 'k', 'K':
			shift = 10
		case 'm', 'M':
			shift = 20
		case 'g', 'G':
			shift = 30
		}
		if shift > 0 {
			digits = text[:n-1]
		}
	}

	n, err := parseDecimal(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, errors.Unwrap(err))
	}
	if n != 0 && bits.Len64(n)+shift > 64 {
		return 0, fmt.Errorf("%q: %w", text, ErrRange)
	}
	n <<= uint(shift)

	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%q: %w", text, ErrNotPowerOfTwo)
	}
	exp := bits.TrailingZeros64(n)
	if err := CheckBounds(exp, lo, hi); err != nil {
		return 0, fmt.Errorf("%q: size %d: %w", text, n, ErrRange)
	}
	return exp, nil
}

func parseDecimal(text string, bitSize int) (uint64, error) {
	if text == "" {
		return 0, fmt.Errorf("%q: %w", text, ErrSyntax)
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, fmt.Errorf("%q: %w", text, ErrSyntax)
		}
	}
	n, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrRange)
	}
	return n, nil
}
