package money

import "errors"

// Errors returned by this package. Use [errors.Is] to match them, as
// all returned errors carry additional context:
//
//	m, err := money.Parse("92233720368547758.075")
//	errors.Is(err, money.ErrOutOfRange) // true
var (
	// ErrInvalidFormat indicates that an input string does not match the
	// monetary format, or that it combines the minus-sign and parenthesized
	// negative notations.
	ErrInvalidFormat = errors.New("invalid monetary format")

	// ErrMalformedNumber indicates that a digit sequence failed numeric
	// conversion for a reason other than exceeding the supported range.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrOutOfRange indicates that a parsed or converted value does not fit
	// into the supported range, [Min] through [Max].
	ErrOutOfRange = errors.New("value out of range")

	// ErrOverflow indicates that an arithmetic operation between two valid
	// values produced a result outside the supported range.
	ErrOverflow = errors.New("overflow")

	// ErrDivideByZero indicates division by a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
)
