package core

import "errors"

const (
	Cash       PaymentMode = "cash"
	UPI        PaymentMode = "upi"
	Card       PaymentMode = "card"
	NetBanking PaymentMode = "net_banking"
	Others     PaymentMode = "others"
)

type (
	// PaymentMode is one of the fixed payment channels an expense can be
	// recorded against.
	PaymentMode string

	// DayBucket is one calendar day of a monthly series. Date uses the
	// yyyy-MM-dd layout produced by FillMonth and by the backend aggregates.
	DayBucket struct {
		Date   string
		Amount float64
	}

	// MonthBucket is one month (1-12) of a yearly series.
	MonthBucket struct {
		Month  int
		Amount float64
	}

	// ModeStat is the per-payment-mode slice of an aggregate.
	ModeStat struct {
		Mode      PaymentMode
		Amount    float64
		UsedCount int
	}

	// CategoryStat is the per-category slice of an aggregate.
	CategoryStat struct {
		Name   string
		Color  string
		Amount float64
	}

	// MonthAggregate is the backend's monthly summary. Daily is sparse:
	// only days with recorded activity are present.
	MonthAggregate struct {
		TotalAmount  float64
		Daily        []DayBucket
		PaymentModes []ModeStat
		Categories   []CategoryStat
	}

	// YearAggregate is the backend's yearly summary, bucketed by month.
	YearAggregate struct {
		TotalAmount  float64
		Monthly      []MonthBucket
		PaymentModes []ModeStat
		Categories   []CategoryStat
	}

	// OverviewSummary holds the current-month income/spend totals.
	OverviewSummary struct {
		MonthlyIncome float64
		TotalExpenses float64
	}

	// OverviewAggregate is the dashboard overview payload. Summary is nil
	// when the backend has nothing recorded for the month.
	OverviewAggregate struct {
		Summary    *OverviewSummary
		Categories []CategoryStat
	}

	// RankedEntry is the result of an argmax over mode or category stats.
	// The zero value is the sentinel meaning "no data" (rendered N/A).
	RankedEntry struct {
		Key       string
		Amount    float64
		UsedCount int
	}

	// ChartPoint is one entry of a dense, render-ready series.
	ChartPoint struct {
		Label  string
		Amount float64
		Color  string
	}
)

var (
	ErrInvalidMonth  = errors.New("invalid month index")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidEmail  = errors.New("invalid email address")
)

var paymentModeLabels = map[PaymentMode]string{
	Cash:       "Cash",
	UPI:        "UPI",
	Card:       "Card",
	NetBanking: "Net Banking",
	Others:     "Others",
}

// PaymentModes returns all modes in display order.
func PaymentModes() []PaymentMode {
	return []PaymentMode{Cash, UPI, Card, NetBanking, Others}
}

// Label returns the display label for the mode, or "" for unknown modes.
func (m PaymentMode) Label() string {
	return paymentModeLabels[m]
}

// Valid reports whether m is one of the fixed payment modes.
func (m PaymentMode) Valid() bool {
	_, ok := paymentModeLabels[m]
	return ok
}
