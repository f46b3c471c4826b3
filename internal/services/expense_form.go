package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/store"
)

var ErrMissingCategory = errors.New("category is required")

// ExpenseFormService drives the add and update dialogs. Submit reads the
// draft from the store, so a dialog's state survives a failed attempt with
// every field intact.
type ExpenseFormService struct {
	client   *api.Client
	store    *store.Store
	notifier notify.Notifier
	logger   *applog.Logger
	now      func() time.Time
}

func NewExpenseFormService(client *api.Client, st *store.Store, notifier notify.Notifier, logger *applog.Logger) *ExpenseFormService {
	return &ExpenseFormService{
		client:   client,
		store:    st,
		notifier: notifier,
		logger:   logger.WithComponent(applog.ComponentForm),
		now:      time.Now,
	}
}

// OpenAdd opens a blank add dialog dated today.
func (s *ExpenseFormService) OpenAdd() {
	s.store.Dispatch(store.OpenAddDialog{At: s.now()})
}

// OpenUpdate opens the update dialog pre-filled from an expense in the store.
func (s *ExpenseFormService) OpenUpdate(expenseID string) error {
	rec, ok := s.store.State().ExpenseByID(expenseID)
	if !ok {
		return fmt.Errorf("expense %s not loaded", expenseID)
	}
	s.store.Dispatch(store.OpenUpdateDialog{Expense: rec})
	return nil
}

// OpenQuickAdd opens the add dialog pre-filled with a shortcut's subcategory.
func (s *ExpenseFormService) OpenQuickAdd(subcategoryID string) {
	s.store.Dispatch(
		store.OpenAddDialog{At: s.now()},
		store.SetFormCategory{Target: store.AddForm, SubcategoryID: subcategoryID},
	)
}

// Close dismisses a dialog. Cancelling blanks the draft the same way a
// successful submit does.
func (s *ExpenseFormService) Close(target store.FormTarget) {
	s.store.Dispatch(store.ResetForm{Target: target, At: s.now()})
}

// Edit applies a single field change to a draft.
func (s *ExpenseFormService) Edit(events ...store.Event) {
	s.store.Dispatch(events...)
}

// Submit validates the draft and sends it to the backend. On success the
// draft is blanked, the dialog closed and the expense date returned so the
// caller can refresh the period it falls in; on failure the draft stays as
// it was and the error is returned for inline display.
func (s *ExpenseFormService) Submit(ctx context.Context, target store.FormTarget) (time.Time, error) {
	draft := s.store.State().Draft(target)

	amount, err := core.ParseAmount(draft.Amount)
	if err != nil {
		return time.Time{}, err
	}
	if draft.SubcategoryID == "" {
		return time.Time{}, ErrMissingCategory
	}
	mode := draft.Mode
	if !mode.Valid() {
		return time.Time{}, fmt.Errorf("payment mode %q is not valid", string(mode))
	}

	date := draft.Date
	if date.IsZero() {
		date = s.now()
	}
	input := api.ExpenseInput{
		SubcategoryID: draft.SubcategoryID,
		ModeOfPayment: string(mode),
		Amount:        amount,
		Date:          date.Format(time.RFC3339),
	}

	var resp api.Response[api.ExpenseRecord]
	if target == store.UpdateForm && draft.TargetExpenseID != "" {
		resp = s.client.Expenses.Update(ctx, draft.TargetExpenseID, input)
	} else {
		resp = s.client.Expenses.Create(ctx, input)
	}
	if !resp.OK() {
		s.logger.Warn("Expense submit failed",
			applog.FieldExpenseID, draft.TargetExpenseID,
			applog.FieldError, resp.Err.Message)
		return time.Time{}, fmt.Errorf("submit expense: %s", resp.Err.Message)
	}

	s.store.Dispatch(
		store.UpsertExpense{Expense: resp.Data},
		store.ResetForm{Target: target, At: s.now()},
	)
	if target == store.UpdateForm {
		s.notifier.Success("Expense updated")
	} else {
		s.notifier.Success("Expense added")
	}
	return date, nil
}

// Delete removes expenses and drops them from the store.
func (s *ExpenseFormService) Delete(ctx context.Context, ids []string) error {
	var resp api.Response[struct{}]
	if len(ids) == 1 {
		resp = s.client.Expenses.Delete(ctx, ids[0])
	} else {
		resp = s.client.Expenses.DeleteBulk(ctx, ids)
	}
	if !resp.OK() {
		return fmt.Errorf("delete expenses: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.RemoveExpenses{IDs: ids})
	s.notifier.Success("Expense deleted")
	return nil
}
