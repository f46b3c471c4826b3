package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ExpensesAPI covers expense CRUD and the analytics aggregates.
type ExpensesAPI struct{ c *Client }

// List returns expenses matching the filter, newest first.
func (a ExpensesAPI) List(ctx context.Context, filter ListFilter) Response[[]ExpenseRecord] {
	q := url.Values{}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	if filter.Mode != "" {
		q.Set("mode_of_payment", filter.Mode)
	}
	if filter.StartDate != "" {
		q.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("endDate", filter.EndDate)
	}
	if filter.SubcategoryID != "" {
		q.Set("subcategory_id", filter.SubcategoryID)
	}
	return do[[]ExpenseRecord](a.c, ctx, http.MethodGet, "/expenses", q, nil)
}

// Create records a new expense.
func (a ExpensesAPI) Create(ctx context.Context, input ExpenseInput) Response[ExpenseRecord] {
	return do[ExpenseRecord](a.c, ctx, http.MethodPost, "/expenses", nil, input)
}

// Update replaces an existing expense.
func (a ExpensesAPI) Update(ctx context.Context, id string, input ExpenseInput) Response[ExpenseRecord] {
	return do[ExpenseRecord](a.c, ctx, http.MethodPut, "/expenses/"+id, nil, input)
}

// Delete removes one expense.
func (a ExpensesAPI) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](a.c, ctx, http.MethodDelete, "/expenses/"+id, nil, nil)
}

// DeleteBulk removes several expenses at once.
func (a ExpensesAPI) DeleteBulk(ctx context.Context, ids []string) Response[struct{}] {
	return do[struct{}](a.c, ctx, http.MethodDelete, "/expenses/bulk", nil, map[string][]string{"ids": ids})
}

// Overview fetches the current-month summary for the dashboard.
func (a ExpensesAPI) Overview(ctx context.Context) Response[OverviewPayload] {
	return do[OverviewPayload](a.c, ctx, http.MethodGet, "/expenses/overview", nil, nil)
}

// Monthly fetches the aggregate for a month (1-12) of a year.
func (a ExpensesAPI) Monthly(ctx context.Context, month, year int) Response[MonthAnalyticsPayload] {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	return do[MonthAnalyticsPayload](a.c, ctx, http.MethodGet, "/expenses/month", q, nil)
}

// Yearly fetches the aggregate for a year.
func (a ExpensesAPI) Yearly(ctx context.Context, year int) Response[YearAnalyticsPayload] {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	return do[YearAnalyticsPayload](a.c, ctx, http.MethodGet, "/expenses/year", q, nil)
}
