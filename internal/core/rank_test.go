package core

import "testing"

func TestTopModeByAmount(t *testing.T) {
	stats := []ModeStat{
		{Mode: Cash, Amount: 50, UsedCount: 9},
		{Mode: UPI, Amount: 200, UsedCount: 3},
		{Mode: Card, Amount: 200, UsedCount: 1},
	}
	got := TopModeByAmount(stats)
	if got.Key != "upi" || got.Amount != 200 {
		t.Fatalf("got %+v, want first of tied maxima (upi, 200)", got)
	}
}

func TestTopModeByUsage(t *testing.T) {
	stats := []ModeStat{
		{Mode: Cash, Amount: 50, UsedCount: 9},
		{Mode: UPI, Amount: 200, UsedCount: 9},
		{Mode: Card, Amount: 500, UsedCount: 2},
	}
	got := TopModeByUsage(stats)
	if got.Key != "cash" || got.UsedCount != 9 {
		t.Fatalf("got %+v, want first of tied maxima (cash, 9)", got)
	}
}

func TestRankersEmptyInput(t *testing.T) {
	sentinel := RankedEntry{}
	if got := TopModeByAmount(nil); got != sentinel {
		t.Fatalf("TopModeByAmount(nil) = %+v", got)
	}
	if got := TopModeByUsage(nil); got != sentinel {
		t.Fatalf("TopModeByUsage(nil) = %+v", got)
	}
	if got := TopCategoryByAmount(nil); got != sentinel {
		t.Fatalf("TopCategoryByAmount(nil) = %+v", got)
	}
}

func TestRankersAllZeroKeepSentinel(t *testing.T) {
	// A strictly-greater fold never replaces the sentinel with a zero entry.
	got := TopModeByAmount([]ModeStat{{Mode: Cash}, {Mode: UPI}})
	if got.Key != "" {
		t.Fatalf("got %+v, want sentinel", got)
	}
}

func TestTopCategoryByAmount(t *testing.T) {
	stats := []CategoryStat{
		{Name: "Food", Color: "#ff0000", Amount: 120},
		{Name: "Travel", Color: "#00ff00", Amount: 340.25},
		{Name: "Rent", Color: "#0000ff", Amount: 340.25},
	}
	got := TopCategoryByAmount(stats)
	if got.Key != "Travel" || got.Amount != 340.25 {
		t.Fatalf("got %+v, want (Travel, 340.25)", got)
	}
}
