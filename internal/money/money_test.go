package money

import (
	"errors"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"0.5", 50},
		{"12.344", 1234},
		{"12.345", 1235},
		{"12.346", 1235},
		{" 7.00 ", 700},
	}
	for _, c := range cases {
		got, err := ParseDecimalToCents(c.in)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestParseDecimalToCentsRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "+5", "0", "0.00", "1.2.3", "12a"} {
		if _, err := ParseDecimalToCents(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q: expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1234, "12.34"},
		{5, "0.05"},
		{-150, "-1.50"},
		{0, "0.00"},
	}
	for _, c := range cases {
		if got := FormatCents(c.in); got != c.want {
			t.Fatalf("%d: expected %q, got %q", c.in, c.want, got)
		}
	}
}
