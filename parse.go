package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a string to a monetary value.
// Only the PostgreSQL en_US.UTF-8 monetary format is supported:
//
//	123
//	-123.45
//	$123.45
//	$123,456.78
//	(93.32)
//
// A negative value is written either with a leading minus sign or by
// parenthesizing the whole string; combining the two notations is an
// error. The currency symbol and the comma grouping separators are
// optional, and comma placement is not validated. Either the whole or
// the fractional digit sequence may be empty, in which case it counts
// as zero.
//
// One or two fractional digits are read as a literal cent count, so
// "5.3" parses as 5 dollars and 3 cents, not 30. With three or more
// fractional digits, the first two are the cent count, the third rounds
// it half-up, and any further digits are ignored.
//
// Parse returns an error if:
//   - the string does not match the format above (ErrInvalidFormat);
//   - a digit sequence fails numeric conversion (ErrMalformedNumber);
//   - the value is outside the range [Min] through [Max] (ErrOutOfRange).
func Parse(s string) (Money, error) {
	a, err := parseAmount(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	n, err := a.cents()
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Money{cents: n}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// monetary values.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// amount is the unsigned body of a monetary string split into its
// digit sequences, with the currency symbol and grouping separators
// already stripped and the fraction not yet rounded.
type amount struct {
	neg   bool
	units string
	frac  string
}

func parseAmount(s string) (amount, error) {
	body, neg, err := splitSign(s)
	if err != nil {
		return amount{}, err
	}
	units, frac, err := splitParts(body)
	if err != nil {
		return amount{}, err
	}
	return amount{neg: neg, units: units, frac: frac}, nil
}

// splitSign recognizes exactly one of the two negative notations,
// a leading minus sign or a fully parenthesized body, and strips it.
func splitSign(s string) (body string, neg bool, err error) {
	switch {
	case strings.HasPrefix(s, "-"):
		body = s[1:]
		if isParenthesized(body) {
			return "", false, fmt.Errorf("%w: minus sign and parentheses must not be combined", ErrInvalidFormat)
		}
		return body, true, nil
	case isParenthesized(s):
		return s[1 : len(s)-1], true, nil
	}
	return s, false, nil
}

func isParenthesized(s string) bool {
	return len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')'
}

// splitParts matches the unsigned body against the monetary shape:
// an optional currency symbol, digits interleaved with grouping
// separators, and an optional decimal point followed by digits.
// The separators are stripped from the returned unit part.
func splitParts(body string) (units, frac string, err error) {
	rest := strings.TrimPrefix(body, "$")
	i := 0
	for i < len(rest) && (isDigit(rest[i]) || rest[i] == ',') {
		i++
	}
	units = strings.ReplaceAll(rest[:i], ",", "")
	rest = rest[i:]
	if rest == "" {
		return units, "", nil
	}
	if rest[0] != '.' {
		return "", "", fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, rune(rest[0]))
	}
	frac = rest[1:]
	for j := 0; j < len(frac); j++ {
		if !isDigit(frac[j]) {
			return "", "", fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, rune(frac[j]))
		}
	}
	return units, frac, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// cents combines the unit and fractional digit sequences into a total
// cent count. The sign is applied to both parts before the combine
// steps: checking overflow on the signed intermediate values is what
// lets the text form of [Min] parse while one cent beyond it fails.
func (a amount) cents() (int64, error) {
	units, err := parseInt(a.units)
	if err != nil {
		return 0, err
	}
	frac, err := roundedCents(a.frac)
	if err != nil {
		return 0, err
	}
	if a.neg {
		units, frac = -units, -frac
	}
	n, ok := mulInt64(units, 100)
	if ok {
		n, ok = addInt64(n, frac)
	}
	if !ok {
		return 0, ErrOutOfRange
	}
	return n, nil
}

// roundedCents converts the fractional digit sequence to a cent count
// of at most two digits. One or two digits are read literally. With
// three or more, only the first three matter: the third digit rounds
// the first two half-up.
func roundedCents(s string) (int64, error) {
	if len(s) <= 2 {
		return parseInt(s)
	}
	n, err := parseInt(s[:2])
	if err != nil {
		return 0, err
	}
	if s[2] >= '5' {
		n++
	}
	return n, nil
}

func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, convErr(err)
	}
	return n, nil
}
