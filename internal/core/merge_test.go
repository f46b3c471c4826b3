package core

import (
	"reflect"
	"testing"
)

func TestMergeDailyEmptySparse(t *testing.T) {
	filled, err := FillMonth(1, 2024)
	if err != nil {
		t.Fatal(err)
	}
	got := MergeDaily(filled, nil)
	if !reflect.DeepEqual(got, filled) {
		t.Fatalf("empty sparse input must return filled unchanged")
	}
}

func TestMergeDailyOverwritesMatches(t *testing.T) {
	filled, err := FillMonth(0, 2024)
	if err != nil {
		t.Fatal(err)
	}
	sparse := []DayBucket{{Date: "2024-01-05", Amount: 150}}
	got := MergeDaily(filled, sparse)

	if len(got) != 31 {
		t.Fatalf("length = %d, want 31", len(got))
	}
	for i, b := range got {
		want := 0.0
		if i == 4 {
			want = 150
		}
		if b.Amount != want {
			t.Fatalf("index %d amount = %v, want %v", i, b.Amount, want)
		}
	}
	// Input slices stay untouched.
	if filled[4].Amount != 0 {
		t.Fatalf("MergeDaily mutated its input")
	}
}

func TestMergeDailyIgnoresUnknownDates(t *testing.T) {
	filled, err := FillMonth(0, 2024)
	if err != nil {
		t.Fatal(err)
	}
	sparse := []DayBucket{
		{Date: "2024-02-01", Amount: 99}, // outside the month
		{Date: "2024-01-10", Amount: 10},
		{Date: "2024-01-10", Amount: 20}, // duplicate, first wins
	}
	got := MergeDaily(filled, sparse)
	if got[9].Amount != 10 {
		t.Fatalf("Jan 10 amount = %v, want 10", got[9].Amount)
	}
	var total float64
	for _, b := range got {
		total += b.Amount
	}
	if total != 10 {
		t.Fatalf("total = %v, want 10 (out-of-month entry must be dropped)", total)
	}
}

func TestMergeMonthly(t *testing.T) {
	got := MergeMonthly(FillYear(2025), []MonthBucket{
		{Month: 3, Amount: 42.5},
		{Month: 12, Amount: 7},
	})
	if len(got) != 12 {
		t.Fatalf("length = %d, want 12", len(got))
	}
	for _, b := range got {
		switch b.Month {
		case 3:
			if b.Amount != 42.5 {
				t.Fatalf("March = %v", b.Amount)
			}
		case 12:
			if b.Amount != 7 {
				t.Fatalf("December = %v", b.Amount)
			}
		default:
			if b.Amount != 0 {
				t.Fatalf("month %d = %v, want 0", b.Month, b.Amount)
			}
		}
	}
}
