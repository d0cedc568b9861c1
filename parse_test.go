package money

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want int64
		}{
			// Currency symbol and cents
			{"$123.45", 12345},
			{"93.32", 9332},
			{"$93.32", 9332},
			{".32", 32},
			{"324023040222", 32402304022200},

			// Rounding on the third fractional digit
			{"$123.451", 12345},
			{"$123.454", 12345},
			{"$123.455", 12346},
			{"$123.456", 12346},
			{"$123.459", 12346},
			{"$123.4549", 12345},

			// Lone fractional digits are literal cent counts
			{".5", 5},
			{"9.8", 908},
			{"5.3", 503},

			// Grouping separators
			{"$123,456.78", 12345678},
			{"1,234", 123400},
			{"1,2,3", 12300},

			// Plain digit strings are whole units
			{"1234567890", 123456789000},
			{"12345678901234567", 1234567890123456700},

			// Negatives
			{"-12345", -1234500},
			{"-1234567890", -123456789000},
			{"-12345678901234567", -1234567890123456700},
			{"(1)", -100},
			{"($123,456.78)", -12345678},
			{"(93.32)", -9332},

			// Range boundaries
			{"92233720368547758.07", math.MaxInt64},
			{"-92233720368547758.08", math.MinInt64},

			// Empty parts count as zero
			{"", 0},
			{"$", 0},
			{".", 0},
			{"$.", 0},
			{"()", 0},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got != New(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.s, got.Int64(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"letters":             {"abc", ErrInvalidFormat},
			"trailing letters":    {"12a", ErrInvalidFormat},
			"two points":          {"1.2.3", ErrInvalidFormat},
			"point then comma":    {"1.2,3", ErrInvalidFormat},
			"double minus":        {"--1", ErrInvalidFormat},
			"inner minus":         {"$-12", ErrInvalidFormat},
			"minus and parens":    {"-(100)", ErrInvalidFormat},
			"minus inside parens": {"(-100)", ErrInvalidFormat},
			"unmatched paren":     {"(1", ErrInvalidFormat},
			"inner symbol":        {"1$2", ErrInvalidFormat},
			"18 digits":           {"123456789012345678", ErrOutOfRange},
			"neg 18 digits":       {"-123456789012345678", ErrOutOfRange},
			"max cents as units":  {"9223372036854775807", ErrOutOfRange},
			"min cents as units":  {"-9223372036854775808", ErrOutOfRange},
			"one past max":        {"92233720368547758.075", ErrOutOfRange},
			"one past min":        {"-92233720368547758.085", ErrOutOfRange},
			"20 digit units":      {"99999999999999999999", ErrOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(tt.s)
				if err == nil {
					t.Errorf("Parse(%q) did not fail", tt.s)
					return
				}
				if !errors.Is(err, tt.want) {
					t.Errorf("Parse(%q) = %v, want %v", tt.s, err, tt.want)
				}
			})
		}
	})
}

// Fractional digits beyond the second still round down to the range
// boundaries, while a fraction that rounds one cent past them fails.
func TestParse_BoundaryRounding(t *testing.T) {
	if got := MustParse("92233720368547758.074"); got != Max() {
		t.Errorf("Parse rounding to max = %v, want %v", got, Max())
	}
	if got := MustParse("-92233720368547758.084"); got != Min() {
		t.Errorf("Parse rounding to min = %v, want %v", got, Min())
	}
	if _, err := Parse("92233720368547758.075"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Parse past max = %v, want %v", err, ErrOutOfRange)
	}
	if _, err := Parse("-92233720368547758.085"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Parse past min = %v, want %v", err, ErrOutOfRange)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tests := []int64{
		0, 1, -1, 99, -99, 100, -100, 12345, -12345,
		9332, -9332, 1234567890123456700, -1234567890123456700,
		math.MaxInt64, math.MinInt64,
	}
	for _, cents := range tests {
		m := New(cents)
		got, err := Parse(m.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", m.String(), err)
			continue
		}
		if got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestMustParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if got := MustParse("$123.45"); got != New(12345) {
			t.Errorf("MustParse(%q) = %v, want %v", "$123.45", got, New(12345))
		}
	})
	t.Run("panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("MustParse(%q) did not panic", "abc")
			}
		}()
		MustParse("abc")
	})
}
