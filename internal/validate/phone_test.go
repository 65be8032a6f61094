package validate

import (
	"errors"
	"testing"
)

func TestStripCountryCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"712345678", "712345678"},
		{"0712345678", "0712345678"},
		{"+254712345678", "712345678"},
		{"254712345678", "712345678"},
		{"00254712345678", "712345678"},
		{"+254 712 345 678", "712345678"},
		{"(071) 234-5678", "0712345678"},
	}
	for _, tc := range cases {
		if got := StripCountryCode(tc.in); got != tc.want {
			t.Fatalf("StripCountryCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckPhone(t *testing.T) {
	for _, ok := range []string{"712345678", "0712345678", "+254712345678"} {
		if err := CheckPhone(ok); err != nil {
			t.Fatalf("expected %q to be valid, got %v", ok, err)
		}
	}
	for _, bad := range []string{"", "12345", "not a phone"} {
		if err := CheckPhone(bad); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected %q to be invalid, got %v", bad, err)
		}
	}
}
