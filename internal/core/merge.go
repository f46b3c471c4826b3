package core

// MergeDaily joins a sparse daily series onto a dense one produced by
// FillMonth. Buckets keep the order and length of filled; a sparse entry
// overwrites the amount of the bucket with the same date key, missing days
// stay at zero. An empty sparse input returns filled unchanged, which is the
// "no data" signal surfaced to the presentation layer.
//
// Matching is exact string equality on the date key. When the sparse input
// carries duplicate dates the first occurrence wins.
func MergeDaily(filled, sparse []DayBucket) []DayBucket {
	out := make([]DayBucket, len(filled))
	copy(out, filled)
	if len(sparse) == 0 {
		return out
	}

	byDate := make(map[string]float64, len(sparse))
	for _, s := range sparse {
		if _, ok := byDate[s.Date]; !ok {
			byDate[s.Date] = s.Amount
		}
	}
	for i := range out {
		if amount, ok := byDate[out[i].Date]; ok {
			out[i].Amount = amount
		}
	}
	return out
}

// MergeMonthly is the yearly analogue of MergeDaily, keyed by month number
// (1-12) instead of date string.
func MergeMonthly(filled, sparse []MonthBucket) []MonthBucket {
	out := make([]MonthBucket, len(filled))
	copy(out, filled)
	if len(sparse) == 0 {
		return out
	}

	byMonth := make(map[int]float64, len(sparse))
	for _, s := range sparse {
		if _, ok := byMonth[s.Month]; !ok {
			byMonth[s.Month] = s.Amount
		}
	}
	for i := range out {
		if amount, ok := byMonth[out[i].Month]; ok {
			out[i].Amount = amount
		}
	}
	return out
}
