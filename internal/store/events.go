package store

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
)

// Event is one state transition. apply is pure: it returns a new state and
// leaves the old one untouched.
type Event interface {
	apply(State) State
}

// SetProfile replaces the signed-in user and their settings.
type SetProfile struct {
	User     api.User
	Settings api.Settings
}

func (e SetProfile) apply(s State) State {
	s.User = e.User
	s.Settings = e.Settings
	return s
}

// PatchUser replaces the user document after a profile update.
type PatchUser struct{ User api.User }

func (e PatchUser) apply(s State) State {
	s.User = e.User
	return s
}

// PatchSettings replaces the settings document.
type PatchSettings struct{ Settings api.Settings }

func (e PatchSettings) apply(s State) State {
	s.Settings = e.Settings
	return s
}

// ClearSession drops everything tied to the signed-in user.
type ClearSession struct{}

func (ClearSession) apply(State) State { return State{} }

// SetCategories replaces the category list, sorted by name.
type SetCategories struct{ Categories []api.Category }

func (e SetCategories) apply(s State) State {
	s.Categories = sortCategories(slices.Clone(e.Categories))
	return s
}

// AddCategory inserts a category keeping the list sorted by name.
type AddCategory struct{ Category api.Category }

func (e AddCategory) apply(s State) State {
	s.Categories = sortCategories(append(slices.Clone(s.Categories), e.Category))
	return s
}

// UpdateCategory replaces a category by id, re-sorting on rename.
type UpdateCategory struct{ Category api.Category }

func (e UpdateCategory) apply(s State) State {
	out := slices.Clone(s.Categories)
	for i, c := range out {
		if c.ID == e.Category.ID {
			out[i] = e.Category
			break
		}
	}
	s.Categories = sortCategories(out)
	return s
}

// RemoveCategories drops categories by id.
type RemoveCategories struct{ IDs []string }

func (e RemoveCategories) apply(s State) State {
	s.Categories = slices.DeleteFunc(slices.Clone(s.Categories), func(c api.Category) bool {
		return slices.Contains(e.IDs, c.ID)
	})
	return s
}

// AddSubcategories appends subcategories under one category.
type AddSubcategories struct {
	CategoryID    string
	Subcategories []api.Subcategory
}

func (e AddSubcategories) apply(s State) State {
	out := slices.Clone(s.Categories)
	for i, c := range out {
		if c.ID == e.CategoryID {
			c.Subcategories = append(slices.Clone(c.Subcategories), e.Subcategories...)
			out[i] = c
			break
		}
	}
	s.Categories = out
	return s
}

// UpdateSubcategory replaces one subcategory wherever it lives.
type UpdateSubcategory struct{ Subcategory api.Subcategory }

func (e UpdateSubcategory) apply(s State) State {
	out := slices.Clone(s.Categories)
	for i, c := range out {
		for j, sub := range c.Subcategories {
			if sub.ID == e.Subcategory.ID {
				c.Subcategories = slices.Clone(c.Subcategories)
				c.Subcategories[j] = e.Subcategory
				out[i] = c
				s.Categories = out
				return s
			}
		}
	}
	return s
}

// RemoveSubcategories drops subcategories by id across all categories.
type RemoveSubcategories struct{ IDs []string }

func (e RemoveSubcategories) apply(s State) State {
	out := slices.Clone(s.Categories)
	for i, c := range out {
		c.Subcategories = slices.DeleteFunc(slices.Clone(c.Subcategories), func(sub api.Subcategory) bool {
			return slices.Contains(e.IDs, sub.ID)
		})
		out[i] = c
	}
	s.Categories = out
	return s
}

// SetRecents replaces the recent-expenses strip.
type SetRecents struct{ Expenses []api.ExpenseRecord }

func (e SetRecents) apply(s State) State {
	s.Expenses.Recents = slices.Clone(e.Expenses)
	return s
}

// SetExpenseList replaces the paged expense table.
type SetExpenseList struct {
	Expenses []api.ExpenseRecord
	Meta     *api.Pagination
}

func (e SetExpenseList) apply(s State) State {
	s.Expenses.List = slices.Clone(e.Expenses)
	s.Expenses.ListMeta = e.Meta
	return s
}

// UpsertExpense replaces an expense in both lists by id, or prepends a new
// one to the recents strip.
type UpsertExpense struct{ Expense api.ExpenseRecord }

func (e UpsertExpense) apply(s State) State {
	replaced := false
	s.Expenses.Recents = replaceExpense(s.Expenses.Recents, e.Expense, &replaced)
	s.Expenses.List = replaceExpense(s.Expenses.List, e.Expense, &replaced)
	if !replaced {
		s.Expenses.Recents = append([]api.ExpenseRecord{e.Expense}, s.Expenses.Recents...)
	}
	return s
}

// RemoveExpenses drops expenses by id from both lists.
type RemoveExpenses struct{ IDs []string }

func (e RemoveExpenses) apply(s State) State {
	drop := func(r api.ExpenseRecord) bool { return slices.Contains(e.IDs, r.ID) }
	s.Expenses.Recents = slices.DeleteFunc(slices.Clone(s.Expenses.Recents), drop)
	s.Expenses.List = slices.DeleteFunc(slices.Clone(s.Expenses.List), drop)
	return s
}

// SetOverview replaces the dashboard overview aggregate.
type SetOverview struct{ Aggregate core.OverviewAggregate }

func (e SetOverview) apply(s State) State {
	s.Expenses.Overview = e.Aggregate
	return s
}

// SetMonthAnalytics replaces the month aggregate and the period it covers.
type SetMonthAnalytics struct {
	Month     int
	Year      int
	Aggregate core.MonthAggregate
}

func (e SetMonthAnalytics) apply(s State) State {
	s.Expenses.Month = MonthView{Month: e.Month, Year: e.Year, Aggregate: e.Aggregate, Loaded: true}
	return s
}

// SetYearAnalytics replaces the year aggregate.
type SetYearAnalytics struct {
	Year      int
	Aggregate core.YearAggregate
}

func (e SetYearAnalytics) apply(s State) State {
	s.Expenses.Year = YearView{Year: e.Year, Aggregate: e.Aggregate, Loaded: true}
	return s
}

// OpenAddDialog opens a blank add draft dated At.
type OpenAddDialog struct{ At time.Time }

func (e OpenAddDialog) apply(s State) State {
	s.Form = s.Form.withDraft(AddForm, Draft{Open: true, Date: e.At})
	return s
}

// OpenUpdateDialog opens the update draft pre-filled from an expense.
type OpenUpdateDialog struct{ Expense api.ExpenseRecord }

func (e OpenUpdateDialog) apply(s State) State {
	d := Draft{
		Open:            true,
		SubcategoryID:   e.Expense.Subcategory.ID,
		Mode:            core.PaymentMode(e.Expense.ModeOfPayment),
		Amount:          strconv.FormatFloat(e.Expense.Amount, 'f', -1, 64),
		TargetExpenseID: e.Expense.ID,
	}
	if t, err := time.Parse(time.RFC3339, e.Expense.Date); err == nil {
		d.Date = t
	}
	s.Form = s.Form.withDraft(UpdateForm, d)
	return s
}

// SetFormCategory sets the draft subcategory.
type SetFormCategory struct {
	Target        FormTarget
	SubcategoryID string
}

func (e SetFormCategory) apply(s State) State {
	d := s.Form.draft(e.Target)
	d.SubcategoryID = e.SubcategoryID
	s.Form = s.Form.withDraft(e.Target, d)
	return s
}

// SetFormMode sets the draft payment mode.
type SetFormMode struct {
	Target FormTarget
	Mode   core.PaymentMode
}

func (e SetFormMode) apply(s State) State {
	d := s.Form.draft(e.Target)
	d.Mode = e.Mode
	s.Form = s.Form.withDraft(e.Target, d)
	return s
}

// SetFormAmount replaces the draft amount text.
type SetFormAmount struct {
	Target FormTarget
	Amount string
}

func (e SetFormAmount) apply(s State) State {
	d := s.Form.draft(e.Target)
	d.Amount = e.Amount
	s.Form = s.Form.withDraft(e.Target, d)
	return s
}

// SetFormDate sets the draft date.
type SetFormDate struct {
	Target FormTarget
	Date   time.Time
}

func (e SetFormDate) apply(s State) State {
	d := s.Form.draft(e.Target)
	d.Date = e.Date
	s.Form = s.Form.withDraft(e.Target, d)
	return s
}

// ResetForm blanks a draft and closes its dialog. The date falls back to At
// so the next open starts on today. Cancel and successful submit both land
// here.
type ResetForm struct {
	Target FormTarget
	At     time.Time
}

func (e ResetForm) apply(s State) State {
	s.Form = s.Form.withDraft(e.Target, Draft{Date: e.At})
	return s
}

func sortCategories(cats []api.Category) []api.Category {
	slices.SortStableFunc(cats, func(a, b api.Category) int {
		return strings.Compare(strings.ToLower(a.CategoryName), strings.ToLower(b.CategoryName))
	})
	return cats
}

func replaceExpense(list []api.ExpenseRecord, exp api.ExpenseRecord, replaced *bool) []api.ExpenseRecord {
	for i, r := range list {
		if r.ID == exp.ID {
			out := slices.Clone(list)
			out[i] = exp
			*replaced = true
			return out
		}
	}
	return list
}
