package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		v        float64
		currency string
		want     string
	}{
		{2154400.9548, "USD", "2,154,401 USD"},
		{1322615.2996, "₽", "1,322,615 ₽"},
		{999.4, "EUR", "999 EUR"},
		{0, "USD", "0 USD"},
		{1234.5, "", "1,235"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.v, c.currency); got != c.want {
			t.Fatalf("FormatMoney(%v, %q) = %q, want %q", c.v, c.currency, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1234567.891, "1,234,567.89"},
		{0.999, "1.00"},
		{-42.5, "-42.50"},
		{100000, "100,000.00"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.v); got != c.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-54321, "-54,321"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.n); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.3593542623); got != "35.9%" {
		t.Fatalf("FormatPercent(0.3594) = %q, want 35.9%%", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q, want 0.0%%", got)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{950, "950"},
		{1234, "1.2K"},
		{2154400.95, "2.2M"},
		{1_500_000_000, "1.5B"},
	}
	for _, c := range cases {
		if got := FormatCompact(c.v); got != c.want {
			t.Fatalf("FormatCompact(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
