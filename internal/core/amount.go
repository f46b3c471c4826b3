package core

import (
	"math"
	"strconv"
	"strings"
)

// AllowAmountKey reports whether a keystroke may be applied to the amount
// input. Digits are always accepted, a dot only while the current value has
// none, and Backspace and the arrow keys pass through regardless of content.
// This is a display-layer filter: the value is re-validated with ParseAmount
// before submission.
func AllowAmountKey(current, key string) bool {
	if key == "Backspace" || strings.HasPrefix(key, "Arrow") {
		return true
	}
	if key == "." {
		return !strings.Contains(current, ".")
	}
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SanitizeAmount reduces arbitrary text to a valid amount value: digits and
// the first decimal point survive, everything else is dropped. Pasted or
// wholesale-set input passes through here so the draft only ever holds what
// the keystroke filter would have allowed.
func SanitizeAmount(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount parses the amount field for submission. It accepts positive
// decimal values only; anything else is a validation failure handled before
// the gateway is contacted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
