package core

// The rankers fold left-to-right from the zero sentinel and replace the
// running best only on a strictly greater value, so the first of several tied
// maxima wins and an empty input returns the sentinel (rendered as N/A).

// TopModeByAmount returns the payment mode with the highest total spend.
func TopModeByAmount(stats []ModeStat) RankedEntry {
	var best RankedEntry
	for _, s := range stats {
		if s.Amount > best.Amount {
			best = RankedEntry{Key: string(s.Mode), Amount: s.Amount, UsedCount: s.UsedCount}
		}
	}
	return best
}

// TopModeByUsage returns the most frequently used payment mode.
func TopModeByUsage(stats []ModeStat) RankedEntry {
	var best RankedEntry
	for _, s := range stats {
		if s.UsedCount > best.UsedCount {
			best = RankedEntry{Key: string(s.Mode), Amount: s.Amount, UsedCount: s.UsedCount}
		}
	}
	return best
}

// TopCategoryByAmount returns the category with the highest spend, the
// "Most Spend On" figure.
func TopCategoryByAmount(stats []CategoryStat) RankedEntry {
	var best RankedEntry
	for _, s := range stats {
		if s.Amount > best.Amount {
			best = RankedEntry{Key: s.Name, Amount: s.Amount}
		}
	}
	return best
}
