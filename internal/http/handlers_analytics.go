package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
)

type barView struct {
	Label  string
	Amount string
	Width  int
}

type pieView struct {
	Label  string
	Amount string
	Color  string
	Pct    int
}

type analyticsView struct {
	Title       string
	Year        int
	Month       int
	Total       string
	HasData     bool
	Bars        []barView
	Pie         []pieView
	TopMode     string
	MostUsed    string
	TopCategory string
}

func (s *Server) handleMonthAnalytics(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)
	if err := s.analytics.Monthly(r.Context(), month, year); err != nil {
		s.logger.Warn("Month analytics load failed",
			applog.FieldMonth, month, applog.FieldYear, year, applog.FieldError, err.Error())
	}

	state := s.store.State()
	symbol := state.CurrencySymbol()
	view := analyticsView{
		Title: time.Month(month).String() + " " + strconv.Itoa(year),
		Year:  year,
		Month: month,
		Total: formatAmount(symbol, state.Expenses.Month.Aggregate.TotalAmount),
		Bars:  buildBars(symbol, state.MonthSeries()),
		Pie:   buildPie(symbol, state.MonthModePie()),
	}
	view.HasData = len(view.Bars) > 0
	view.TopMode = rankedLabel(state.MonthTopMode())
	view.MostUsed = rankedLabel(state.MonthMostUsedMode())
	view.TopCategory = rankedKey(state.MonthTopCategory())
	s.render(w, "month_chart.html", view)
}

func (s *Server) handleYearAnalytics(w http.ResponseWriter, r *http.Request) {
	year, _ := parseYearMonth(r)
	if err := s.analytics.Yearly(r.Context(), year); err != nil {
		s.logger.Warn("Year analytics load failed", applog.FieldYear, year, applog.FieldError, err.Error())
	}

	state := s.store.State()
	symbol := state.CurrencySymbol()
	agg := state.Expenses.Year.Aggregate
	view := analyticsView{
		Title:       strconv.Itoa(year),
		Year:        year,
		Total:       formatAmount(symbol, agg.TotalAmount),
		Bars:        buildBars(symbol, state.YearSeries()),
		Pie:         buildPie(symbol, state.YearModePie()),
		TopMode:     rankedLabel(core.TopModeByAmount(agg.PaymentModes)),
		MostUsed:    rankedLabel(core.TopModeByUsage(agg.PaymentModes)),
		TopCategory: rankedKey(core.TopCategoryByAmount(agg.Categories)),
	}
	view.HasData = len(view.Bars) > 0
	s.render(w, "year_chart.html", view)
}

func buildBars(symbol string, series []core.ChartPoint) []barView {
	var max float64
	for _, p := range series {
		if p.Amount > max {
			max = p.Amount
		}
	}
	bars := make([]barView, len(series))
	for i, p := range series {
		bars[i] = barView{
			Label:  p.Label,
			Amount: formatAmount(symbol, p.Amount),
			Width:  barWidth(p.Amount, max),
		}
	}
	return bars
}

func buildPie(symbol string, points []core.ChartPoint) []pieView {
	var total float64
	for _, p := range points {
		total += p.Amount
	}
	out := make([]pieView, len(points))
	for i, p := range points {
		pct := 0
		if total > 0 {
			pct = int(p.Amount/total*100 + 0.5)
		}
		out[i] = pieView{
			Label:  p.Label,
			Amount: formatAmount(symbol, p.Amount),
			Color:  p.Color,
			Pct:    pct,
		}
	}
	return out
}

func rankedLabel(entry core.RankedEntry) string {
	if entry.Key == "" {
		return "N/A"
	}
	if label := core.PaymentMode(entry.Key).Label(); label != "" {
		return label
	}
	return entry.Key
}

func rankedKey(entry core.RankedEntry) string {
	if entry.Key == "" {
		return "N/A"
	}
	return entry.Key
}
