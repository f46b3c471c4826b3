package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

type overviewView struct {
	HasSummary  bool
	Income      string
	Spent       string
	Remaining   string
	TopCategory string
	TopAmount   string
}

type expenseRow struct {
	ID       string
	Date     string
	Category string
	Sub      string
	Mode     string
	Amount   string
}

type dashboardView struct {
	UserName string
	Year     int
	Month    int
	Overview overviewView
	Recents  []expenseRow
	QuickAdd []store.QuickAddEntry
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.analytics.RefreshDashboard(r.Context()); err != nil {
		s.logger.Warn("Dashboard refresh incomplete", applog.FieldError, err.Error())
	}
	state := s.store.State()
	now := time.Now()
	s.render(w, "index.html", dashboardView{
		UserName: state.User.Name,
		Year:     now.Year(),
		Month:    int(now.Month()),
		Overview: buildOverview(state),
		Recents:  buildRows(state, state.Expenses.Recents),
		QuickAdd: state.QuickAddEntries(),
	})
}

func (s *Server) handleOverviewPartial(w http.ResponseWriter, r *http.Request) {
	if err := s.analytics.Overview(r.Context()); err != nil {
		s.logger.Warn("Overview refresh failed", applog.FieldError, err.Error())
	}
	s.render(w, "overview.html", buildOverview(s.store.State()))
}

func (s *Server) handleRecentsPartial(w http.ResponseWriter, r *http.Request) {
	if err := s.analytics.RefreshRecents(r.Context()); err != nil {
		s.logger.Warn("Recents refresh failed", applog.FieldError, err.Error())
	}
	state := s.store.State()
	s.render(w, "recents.html", buildRows(state, state.Expenses.Recents))
}

type historyView struct {
	Rows     []expenseRow
	Page     int
	PrevPage int
	NextPage int
	HasPrev  bool
	HasNext  bool
	Total    int
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.render(w, "history.html", s.loadHistory(r))
}

func (s *Server) handleHistoryPartial(w http.ResponseWriter, r *http.Request) {
	s.render(w, "history_table.html", s.loadHistory(r))
}

func (s *Server) loadHistory(r *http.Request) historyView {
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	filter := api.ListFilter{Page: page, Limit: 10, Mode: r.URL.Query().Get("mode")}

	if err := s.analytics.ListExpenses(r.Context(), filter); err != nil {
		s.logger.Warn("History load failed", applog.FieldError, err.Error())
	}
	state := s.store.State()

	view := historyView{
		Rows:     buildRows(state, state.Expenses.List),
		Page:     page,
		PrevPage: page - 1,
		NextPage: page + 1,
		HasPrev:  page > 1,
	}
	if meta := state.Expenses.ListMeta; meta != nil {
		view.Total = meta.Total
		view.HasNext = page < meta.TotalPages
	}
	return view
}

func buildOverview(state store.State) overviewView {
	symbol := state.CurrencySymbol()
	view := overviewView{TopCategory: "N/A"}

	if sum := state.Expenses.Overview.Summary; sum != nil {
		view.HasSummary = true
		view.Income = formatAmount(symbol, sum.MonthlyIncome)
		view.Spent = formatAmount(symbol, sum.TotalExpenses)
		view.Remaining = formatAmount(symbol, sum.MonthlyIncome-sum.TotalExpenses)
	}
	if top := state.TopSpendCategory(); top.Key != "" {
		view.TopCategory = top.Key
		view.TopAmount = formatAmount(symbol, top.Amount)
	}
	return view
}

func buildRows(state store.State, records []api.ExpenseRecord) []expenseRow {
	symbol := state.CurrencySymbol()
	rows := make([]expenseRow, len(records))
	for i, rec := range records {
		date := rec.Date
		if t, err := time.Parse(time.RFC3339, rec.Date); err == nil {
			date = t.Format("Jan 2, 2006")
		}
		rows[i] = expenseRow{
			ID:       rec.ID,
			Date:     date,
			Category: rec.Subcategory.Category.Name,
			Sub:      rec.Subcategory.Name,
			Mode:     core.PaymentMode(rec.ModeOfPayment).Label(),
			Amount:   formatAmount(symbol, rec.Amount),
		}
	}
	return rows
}
