// Package store holds the in-memory application state. Handlers dispatch
// events, reducers fold them into a new state value, and templates read
// snapshots through selectors. Reducers never mutate shared slices in place.
package store

import (
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
)

// State is the whole application state. It is passed and returned by value;
// slices inside are treated as immutable once set.
type State struct {
	User       api.User
	Settings   api.Settings
	Categories []api.Category
	Expenses   ExpensesState
	Form       FormState
}

// ExpensesState carries the expense lists and the fetched aggregates.
type ExpensesState struct {
	Recents  []api.ExpenseRecord
	List     []api.ExpenseRecord
	ListMeta *api.Pagination
	Overview core.OverviewAggregate
	Month    MonthView
	Year     YearView
}

// MonthView is the last-fetched month aggregate and the period it covers.
type MonthView struct {
	Month     int // 1-12
	Year      int
	Aggregate core.MonthAggregate
	Loaded    bool
}

// YearView is the last-fetched year aggregate.
type YearView struct {
	Year      int
	Aggregate core.YearAggregate
	Loaded    bool
}

// FormTarget names one of the two expense dialogs. They are independent:
// opening one never closes the other.
type FormTarget int

const (
	AddForm FormTarget = iota
	UpdateForm
)

// Draft is the editable state of one expense dialog.
type Draft struct {
	Open            bool
	SubcategoryID   string
	Mode            core.PaymentMode
	Amount          string
	Date            time.Time
	TargetExpenseID string
}

// FormState holds the add and update drafts side by side.
type FormState struct {
	Add    Draft
	Update Draft
}

func (f FormState) draft(target FormTarget) Draft {
	if target == UpdateForm {
		return f.Update
	}
	return f.Add
}

func (f FormState) withDraft(target FormTarget, d Draft) FormState {
	if target == UpdateForm {
		f.Update = d
	} else {
		f.Add = d
	}
	return f
}

// Draft returns the requested dialog draft.
func (s State) Draft(target FormTarget) Draft {
	return s.Form.draft(target)
}
