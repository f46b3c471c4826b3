package core

import "testing"

func TestAllowAmountKey(t *testing.T) {
	cases := []struct {
		current string
		key     string
		allow   bool
	}{
		{"", "1", true},
		{"12", "3", true},
		{"12", ".", true},
		{"12.3", ".", false}, // second dot rejected
		{"12.3", "4", true},
		{"12.3", "Backspace", true},
		{"", "Backspace", true},
		{"12.3", "ArrowLeft", true},
		{"12.3", "ArrowRight", true},
		{"12", "a", false},
		{"12", "-", false},
		{"12", "Enter", false},
		{"12", " ", false},
		{"12", "", false},
	}
	for _, tc := range cases {
		if got := AllowAmountKey(tc.current, tc.key); got != tc.allow {
			t.Fatalf("AllowAmountKey(%q, %q) = %v, want %v", tc.current, tc.key, got, tc.allow)
		}
	}
}

func TestSanitizeAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"12.34", "12.34"},
		{"", ""},
		{"12€34", "1234"},
		{"1.2.3", "1.23"},
		{"$ 1,250.00", "1250.00"},
		{"abc", ""},
		{"-5", "5"},
	}
	for _, tc := range cases {
		if got := SanitizeAmount(tc.in); got != tc.out {
			t.Fatalf("SanitizeAmount(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"12.34", 12.34, true},
		{"7", 7, true},
		{" 2.50 ", 2.5, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"12.3.4", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("ParseAmount(%q) = %v, %v; want %v", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	good := []string{"a@b.co", "user.name+tag@example.com", "x_1%@sub.domain.org"}
	for _, e := range good {
		if err := ValidateEmail(e); err != nil {
			t.Fatalf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}
	bad := []string{"", "plain", "a@b", "a@@b.co", "a b@c.de", "@no-local.com"}
	for _, e := range bad {
		if err := ValidateEmail(e); err == nil {
			t.Fatalf("ValidateEmail(%q) expected error", e)
		}
	}
}
