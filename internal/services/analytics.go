// Package services orchestrates the gateway, the store and the notification
// center. Handlers call services; services fetch, reshape and dispatch.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/cache"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

const recentsLimit = 5

const (
	aggregateCacheSize = 48
	aggregateCacheTTL  = 5 * time.Minute
)

// AnalyticsService loads the dashboard and analytics aggregates into the
// store. Fetch failures surface as toasts through the gateway; the store
// keeps its previous data.
type AnalyticsService struct {
	client *api.Client
	store  *store.Store
	logger *applog.Logger
	now    func() time.Time

	// Recently viewed periods stay warm so flipping between months does
	// not refetch. Invalidate drops a period after a write.
	months *cache.TTL[core.MonthAggregate]
	years  *cache.TTL[core.YearAggregate]
}

func NewAnalyticsService(client *api.Client, st *store.Store, logger *applog.Logger) *AnalyticsService {
	return &AnalyticsService{
		client: client,
		store:  st,
		logger: logger.WithComponent(applog.ComponentAnalytics),
		now:    time.Now,
		months: cache.New[core.MonthAggregate](aggregateCacheSize, aggregateCacheTTL),
		years:  cache.New[core.YearAggregate](aggregateCacheSize, aggregateCacheTTL),
	}
}

func monthKey(month, year int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}

// Invalidate drops cached aggregates touching the given day, so the next
// view after a write refetches.
func (s *AnalyticsService) Invalidate(at time.Time) {
	s.months.Delete(monthKey(int(at.Month()), at.Year()))
	s.years.Delete(strconv.Itoa(at.Year()))
}

// RefreshDashboard fetches the overview, the recent expenses and the current
// month's aggregate in parallel and dispatches whatever succeeded.
func (s *AnalyticsService) RefreshDashboard(ctx context.Context) error {
	now := s.now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.Overview(gctx) })
	g.Go(func() error { return s.RefreshRecents(gctx) })
	g.Go(func() error { return s.Monthly(gctx, int(now.Month()), now.Year()) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}
	return nil
}

// Overview loads the current-month summary.
func (s *AnalyticsService) Overview(ctx context.Context) error {
	resp := s.client.Expenses.Overview(ctx)
	if !resp.OK() {
		return fmt.Errorf("fetch overview: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.SetOverview{Aggregate: resp.Data.Aggregate()})
	return nil
}

// RefreshRecents loads the latest expenses strip.
func (s *AnalyticsService) RefreshRecents(ctx context.Context) error {
	resp := s.client.Expenses.List(ctx, api.ListFilter{Limit: recentsLimit})
	if !resp.OK() {
		return fmt.Errorf("fetch recents: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.SetRecents{Expenses: resp.Data})
	return nil
}

// Monthly loads the aggregate for a month (1-12) of a year.
func (s *AnalyticsService) Monthly(ctx context.Context, month, year int) error {
	if agg, ok := s.months.Get(monthKey(month, year)); ok {
		s.store.Dispatch(store.SetMonthAnalytics{Month: month, Year: year, Aggregate: agg})
		return nil
	}

	resp := s.client.Expenses.Monthly(ctx, month, year)
	if !resp.OK() {
		return fmt.Errorf("fetch month %d/%d: %s", month, year, resp.Err.Message)
	}
	agg := resp.Data.Aggregate()
	s.months.Set(monthKey(month, year), agg)
	s.store.Dispatch(store.SetMonthAnalytics{Month: month, Year: year, Aggregate: agg})
	s.logger.Debug("Month analytics loaded", applog.FieldMonth, month, applog.FieldYear, year)
	return nil
}

// Yearly loads the aggregate for a year.
func (s *AnalyticsService) Yearly(ctx context.Context, year int) error {
	if agg, ok := s.years.Get(strconv.Itoa(year)); ok {
		s.store.Dispatch(store.SetYearAnalytics{Year: year, Aggregate: agg})
		return nil
	}

	resp := s.client.Expenses.Yearly(ctx, year)
	if !resp.OK() {
		return fmt.Errorf("fetch year %d: %s", year, resp.Err.Message)
	}
	agg := resp.Data.Aggregate()
	s.years.Set(strconv.Itoa(year), agg)
	s.store.Dispatch(store.SetYearAnalytics{Year: year, Aggregate: agg})
	s.logger.Debug("Year analytics loaded", applog.FieldYear, year)
	return nil
}

// ListExpenses loads a page of the expense table.
func (s *AnalyticsService) ListExpenses(ctx context.Context, filter api.ListFilter) error {
	resp := s.client.Expenses.List(ctx, filter)
	if !resp.OK() {
		return fmt.Errorf("fetch expenses: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.SetExpenseList{Expenses: resp.Data, Meta: resp.Meta})
	return nil
}
