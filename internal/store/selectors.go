package store

import (
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
)

// modePalette colors the payment-mode pie. Modes cycle through it in wire
// order, matching the dashboard's fixed palette.
var modePalette = []string{"#6366f1", "#f59e0b", "#10b981", "#ef4444", "#8b5cf6"}

// MonthSeries is the dense day-by-day bar series for the loaded month. It is
// empty when nothing was fetched or the month had no activity, which the
// templates render as "No Data".
func (s State) MonthSeries() []core.ChartPoint {
	v := s.Expenses.Month
	if !v.Loaded || len(v.Aggregate.Daily) == 0 {
		return nil
	}
	filled, err := core.FillMonth(v.Month-1, v.Year)
	if err != nil {
		return nil
	}
	merged := core.MergeDaily(filled, v.Aggregate.Daily)
	out := make([]core.ChartPoint, len(merged))
	for i, b := range merged {
		out[i] = core.ChartPoint{Label: day(b.Date), Amount: b.Amount}
	}
	return out
}

// YearSeries is the twelve-month bar series for the loaded year, empty when
// no month has any spend.
func (s State) YearSeries() []core.ChartPoint {
	v := s.Expenses.Year
	if !v.Loaded || !anySpend(v.Aggregate.Monthly) {
		return nil
	}
	merged := core.MergeMonthly(core.FillYear(v.Year), v.Aggregate.Monthly)
	out := make([]core.ChartPoint, len(merged))
	for i, b := range merged {
		out[i] = core.ChartPoint{Label: time.Month(b.Month).String()[:3], Amount: b.Amount}
	}
	return out
}

// MonthModePie shapes the month's payment-mode split for the pie chart.
func (s State) MonthModePie() []core.ChartPoint {
	return modePie(s.Expenses.Month.Aggregate.PaymentModes)
}

// YearModePie shapes the year's payment-mode split for the pie chart.
func (s State) YearModePie() []core.ChartPoint {
	return modePie(s.Expenses.Year.Aggregate.PaymentModes)
}

// TopSpendCategory is the overview's highest-spend category, or "N/A".
func (s State) TopSpendCategory() core.RankedEntry {
	return core.TopCategoryByAmount(s.Expenses.Overview.Categories)
}

// MonthTopMode is the month's highest-spend payment mode.
func (s State) MonthTopMode() core.RankedEntry {
	return core.TopModeByAmount(s.Expenses.Month.Aggregate.PaymentModes)
}

// MonthMostUsedMode is the month's most frequently used payment mode.
func (s State) MonthMostUsedMode() core.RankedEntry {
	return core.TopModeByUsage(s.Expenses.Month.Aggregate.PaymentModes)
}

// MonthTopCategory is the month's highest-spend category.
func (s State) MonthTopCategory() core.RankedEntry {
	return core.TopCategoryByAmount(s.Expenses.Month.Aggregate.Categories)
}

// CurrencySymbol resolves the user's currency setting to its display symbol.
func (s State) CurrencySymbol() string {
	return core.CurrencySymbol(s.Settings.Currency)
}

// ExpenseByID finds an expense in the recents strip or the paged list.
func (s State) ExpenseByID(id string) (api.ExpenseRecord, bool) {
	for _, r := range s.Expenses.Recents {
		if r.ID == id {
			return r, true
		}
	}
	for _, r := range s.Expenses.List {
		if r.ID == id {
			return r, true
		}
	}
	return api.ExpenseRecord{}, false
}

// QuickAddEntry is one dashboard shortcut resolved to its subcategory.
type QuickAddEntry struct {
	SubcategoryID string
	Name          string
	Color         string
}

// QuickAddEntries resolves the quick-add shortcut ids from settings against
// the loaded categories. Ids pointing at deleted subcategories are skipped.
func (s State) QuickAddEntries() []QuickAddEntry {
	var out []QuickAddEntry
	for _, id := range s.Settings.QuickAdd {
		for _, c := range s.Categories {
			for _, sub := range c.Subcategories {
				if sub.ID == id {
					out = append(out, QuickAddEntry{SubcategoryID: id, Name: sub.Name, Color: sub.Color})
				}
			}
		}
	}
	return out
}

func modePie(stats []core.ModeStat) []core.ChartPoint {
	out := make([]core.ChartPoint, len(stats))
	for i, m := range stats {
		out[i] = core.ChartPoint{
			Label:  m.Mode.Label(),
			Amount: m.Amount,
			Color:  modePalette[i%len(modePalette)],
		}
	}
	return out
}

func anySpend(buckets []core.MonthBucket) bool {
	for _, b := range buckets {
		if b.Amount > 0 {
			return true
		}
	}
	return false
}

func day(date string) string {
	if t, err := time.Parse(core.DateLayout, date); err == nil {
		return t.Format("2")
	}
	return date
}
