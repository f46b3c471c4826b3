package http

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

type dialogView struct {
	Target     string
	Title      string
	Open       bool
	Amount     string
	Date       string
	Mode       core.PaymentMode
	SubID      string
	Error      string
	Modes      []core.PaymentMode
	Categories []api.Category
}

func (s *Server) dialogView(target store.FormTarget, errMsg string) dialogView {
	state := s.store.State()
	draft := state.Draft(target)

	name, title := "add", "Add Expense"
	if target == store.UpdateForm {
		name, title = "update", "Update Expense"
	}
	view := dialogView{
		Target:     name,
		Title:      title,
		Open:       draft.Open,
		Amount:     draft.Amount,
		Mode:       draft.Mode,
		SubID:      draft.SubcategoryID,
		Error:      errMsg,
		Modes:      core.PaymentModes(),
		Categories: state.Categories,
	}
	if !draft.Date.IsZero() {
		view.Date = draft.Date.Format(core.DateLayout)
	}
	return view
}

func (s *Server) handleDialogOpen(w http.ResponseWriter, r *http.Request) {
	target, ok := parseTarget(r)
	if !ok {
		BadRequestError("Unknown dialog").Write(w)
		return
	}

	if target == store.UpdateForm {
		id := r.URL.Query().Get("expense")
		if err := s.form.OpenUpdate(id); err != nil {
			s.logger.Warn("Update dialog open failed", applog.FieldExpenseID, id, applog.FieldError, err.Error())
			BadRequestError("Expense not found").Write(w)
			return
		}
	} else {
		s.form.OpenAdd()
	}
	s.render(w, "expense_dialog.html", s.dialogView(target, ""))
}

func (s *Server) handleDialogClose(w http.ResponseWriter, r *http.Request) {
	target, ok := parseTarget(r)
	if !ok {
		BadRequestError("Unknown dialog").Write(w)
		return
	}
	s.form.Close(target)
	s.render(w, "expense_dialog.html", s.dialogView(target, ""))
}

// handleDialogField applies one field edit to the server-held draft.
func (s *Server) handleDialogField(w http.ResponseWriter, r *http.Request) {
	target, ok := parseTarget(r)
	if !ok {
		BadRequestError("Unknown dialog").Write(w)
		return
	}
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}

	switch r.Form.Get("field") {
	case "category":
		s.form.Edit(store.SetFormCategory{Target: target, SubcategoryID: sanitizeInput(r.Form.Get("value"))})
	case "mode":
		mode := core.PaymentMode(r.Form.Get("value"))
		if !mode.Valid() {
			BadRequestError("Unknown payment mode").Write(w)
			return
		}
		s.form.Edit(store.SetFormMode{Target: target, Mode: mode})
	case "amount":
		s.form.Edit(store.SetFormAmount{Target: target, Amount: core.SanitizeAmount(r.Form.Get("value"))})
	case "date":
		if t, err := time.Parse(core.DateLayout, r.Form.Get("value")); err == nil {
			s.form.Edit(store.SetFormDate{Target: target, Date: t})
		}
	default:
		BadRequestError("Unknown field").Write(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAmountKey filters one keystroke against the amount rules and returns
// the resulting input value. Rejected keys leave the draft untouched.
func (s *Server) handleAmountKey(w http.ResponseWriter, r *http.Request) {
	target, ok := parseTarget(r)
	if !ok {
		BadRequestError("Unknown dialog").Write(w)
		return
	}
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	key := r.Form.Get("key")

	current := s.store.State().Draft(target).Amount
	if core.AllowAmountKey(current, key) {
		switch {
		case key == "Backspace" && current != "":
			_, size := utf8.DecodeLastRuneInString(current)
			current = current[:len(current)-size]
		case len(key) == 1:
			current += key
		}
		s.form.Edit(store.SetFormAmount{Target: target, Amount: current})
	}
	s.render(w, "amount_input.html", s.dialogView(target, ""))
}

func (s *Server) handleExpenseSubmit(w http.ResponseWriter, r *http.Request) {
	target, ok := parseTarget(r)
	if !ok {
		BadRequestError("Unknown dialog").Write(w)
		return
	}

	// An update may move the expense to another period; both the old and
	// the new one need a refresh.
	var prior time.Time
	if target == store.UpdateForm {
		if id := s.store.State().Draft(target).TargetExpenseID; id != "" {
			prior = s.expenseDate(id)
		}
	}

	when, err := s.form.Submit(r.Context(), target)
	if err != nil {
		// The draft keeps its fields so the user can correct and retry.
		b := UnprocessableEntityError("").DrainNotifications(s.notifier)
		s.renderTo(b, w, "expense_dialog.html", s.dialogView(target, err.Error()))
		return
	}

	s.analytics.Invalidate(when)
	if !prior.IsZero() {
		s.analytics.Invalidate(prior)
	}
	b := NewHTMXResponse().DrainNotifications(s.notifier)
	if target == store.UpdateForm {
		b.TriggerExpenseUpdated(when.Year(), int(when.Month()))
	} else {
		b.TriggerExpenseCreated(when.Year(), int(when.Month()))
	}
	s.renderTo(b, w, "expense_dialog.html", s.dialogView(target, ""))
}

func (s *Server) handleExpenseDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	when := s.expenseDate(id)
	if err := s.form.Delete(r.Context(), []string{id}); err != nil {
		s.logger.Warn("Expense delete failed", applog.FieldExpenseID, id, applog.FieldError, err.Error())
		InternalServerError("Could not delete the expense").DrainNotifications(s.notifier).Write(w)
		return
	}
	s.analytics.Invalidate(when)
	NewHTMXResponse().
		TriggerExpenseDeleted().
		DrainNotifications(s.notifier).
		Write(w)
}

// handleQuickAdd opens the add dialog pre-filled from a dashboard shortcut.
func (s *Server) handleQuickAdd(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	id := sanitizeInput(r.Form.Get("subcategory"))
	if id == "" {
		BadRequestError("Unknown shortcut").Write(w)
		return
	}
	s.form.OpenQuickAdd(id)
	s.render(w, "expense_dialog.html", s.dialogView(store.AddForm, ""))
}

// expenseDate resolves an expense id to the period it falls in, so cache
// invalidation hits the month the expense is dated, not the current one.
// Unknown ids fall back to now.
func (s *Server) expenseDate(id string) time.Time {
	if rec, ok := s.store.State().ExpenseByID(id); ok {
		if t, err := time.Parse(time.RFC3339, rec.Date); err == nil {
			return t
		}
	}
	return time.Now()
}
