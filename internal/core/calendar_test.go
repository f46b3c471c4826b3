package core

import "testing"

func TestFillMonthLengths(t *testing.T) {
	cases := []struct {
		month int // zero-based
		year  int
		days  int
	}{
		{1, 2024, 29}, // leap February
		{1, 2023, 28},
		{3, 2024, 30},
		{0, 2024, 31},
		{11, 2025, 31},
		{1, 2000, 29}, // divisible-by-400 leap year
		{1, 1900, 28}, // centurial non-leap year
	}
	for _, tc := range cases {
		got, err := FillMonth(tc.month, tc.year)
		if err != nil {
			t.Fatalf("FillMonth(%d, %d): %v", tc.month, tc.year, err)
		}
		if len(got) != tc.days {
			t.Fatalf("FillMonth(%d, %d) length = %d, want %d", tc.month, tc.year, len(got), tc.days)
		}
	}
}

func TestFillMonthOrderAndZeroAmounts(t *testing.T) {
	buckets, err := FillMonth(0, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if buckets[0].Date != "2024-01-01" || buckets[30].Date != "2024-01-31" {
		t.Fatalf("unexpected boundary dates: %q .. %q", buckets[0].Date, buckets[30].Date)
	}
	for i, b := range buckets {
		if b.Amount != 0 {
			t.Fatalf("bucket %d amount = %v, want 0", i, b.Amount)
		}
		if i > 0 && !(buckets[i-1].Date < b.Date) {
			t.Fatalf("dates not strictly ascending at %d: %q >= %q", i, buckets[i-1].Date, b.Date)
		}
	}
}

func TestFillMonthInvalidIndex(t *testing.T) {
	for _, m := range []int{-1, 12, 42} {
		if _, err := FillMonth(m, 2024); err != ErrInvalidMonth {
			t.Fatalf("FillMonth(%d, 2024) error = %v, want ErrInvalidMonth", m, err)
		}
	}
}

func TestFillYear(t *testing.T) {
	buckets := FillYear(2025)
	if len(buckets) != 12 {
		t.Fatalf("length = %d, want 12", len(buckets))
	}
	for i, b := range buckets {
		if b.Month != i+1 || b.Amount != 0 {
			t.Fatalf("bucket %d = %+v", i, b)
		}
	}
}
