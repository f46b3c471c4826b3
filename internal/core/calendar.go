package core

import "time"

// DateLayout is the calendar-day key format shared with the backend aggregates.
const DateLayout = "2006-01-02"

// FillMonth returns one zero-amount DayBucket per calendar day of the given
// month, in ascending date order. monthIndex is zero-based (0 = January), as
// the analytics screens address months; year is any civil year. Leap years
// fall out of the native date arithmetic.
func FillMonth(monthIndex, year int) ([]DayBucket, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return nil, ErrInvalidMonth
	}
	first := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	buckets := make([]DayBucket, days)
	for i := range buckets {
		buckets[i] = DayBucket{Date: first.AddDate(0, 0, i).Format(DateLayout)}
	}
	return buckets, nil
}

// FillYear returns twelve zero-amount MonthBuckets, January through December.
func FillYear(year int) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i] = MonthBucket{Month: i + 1}
	}
	return buckets
}
