package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
)

func TestMonthlyDispatchesAggregate(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/expenses/month" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("month"); got != "2" {
			t.Fatalf("month = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"totalAmount": 300,
			"analytics": map[string]any{
				"daily":        []map[string]any{{"date": "2024-02-29", "amount": 300}},
				"paymentModes": []map[string]any{{"mode": "card", "amount": 300, "usedCount": 2}},
				"categories":   []map[string]any{{"name": "Food", "color": "#f00", "amount": 300}},
			},
		}})
	}))
	svc := NewAnalyticsService(h.client, h.store, testLogger())

	if err := svc.Monthly(context.Background(), 2, 2024); err != nil {
		t.Fatal(err)
	}

	state := h.store.State()
	if !state.Expenses.Month.Loaded || state.Expenses.Month.Month != 2 {
		t.Fatalf("month view = %+v", state.Expenses.Month)
	}
	series := state.MonthSeries()
	if len(series) != 29 {
		t.Fatalf("len = %d, want 29 for Feb 2024", len(series))
	}
	if series[28].Amount != 300 {
		t.Fatalf("series[28] = %+v", series[28])
	}
	if top := state.MonthTopMode(); top.Key != "card" {
		t.Fatalf("top mode = %+v", top)
	}
}

func TestRefreshDashboardFansOut(t *testing.T) {
	var hits atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/expenses/overview":
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
				"summary":    map[string]any{"monthlyIncome": 1000, "totalExpenses": 400},
				"categories": []map[string]any{{"name": "Rent", "color": "#333", "amount": 400}},
			}})
		case "/expenses":
			_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"_id": "e1", "amount": 400}}})
		case "/expenses/month":
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
				"totalAmount": 400,
				"analytics":   map[string]any{"daily": []any{}, "paymentModes": []any{}, "categories": []any{}},
			}})
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	svc := NewAnalyticsService(h.client, h.store, testLogger())
	svc.now = func() time.Time { return time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC) }

	if err := svc.RefreshDashboard(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("backend hits = %d, want 3", got)
	}

	state := h.store.State()
	if state.Expenses.Overview.Summary == nil || state.Expenses.Overview.Summary.TotalExpenses != 400 {
		t.Fatalf("overview = %+v", state.Expenses.Overview)
	}
	if len(state.Expenses.Recents) != 1 {
		t.Fatalf("recents = %+v", state.Expenses.Recents)
	}
	if top := state.TopSpendCategory(); top.Key != "Rent" {
		t.Fatalf("top spend = %+v", top)
	}
}

func TestRefreshDashboardReportsFailure(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/expenses/overview" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	svc := NewAnalyticsService(h.client, h.store, testLogger())

	if err := svc.RefreshDashboard(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestMonthlyServesSecondViewFromCache(t *testing.T) {
	var hits atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"totalAmount": 50,
			"analytics":   map[string]any{"daily": []any{}, "paymentModes": []any{}, "categories": []any{}},
		}})
	}))
	svc := NewAnalyticsService(h.client, h.store, testLogger())

	ctx := context.Background()
	if err := svc.Monthly(ctx, 4, 2024); err != nil {
		t.Fatal(err)
	}
	if err := svc.Monthly(ctx, 4, 2024); err != nil {
		t.Fatal(err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("backend hits = %d, want 1", got)
	}

	svc.Invalidate(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
	if err := svc.Monthly(ctx, 4, 2024); err != nil {
		t.Fatal(err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("backend hits after invalidate = %d, want 2", got)
	}
}

func TestListExpensesStoresMeta(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"_id": "e1"}},
			"meta": map[string]int{"total": 40, "limit": 10, "page": 3, "totalPages": 4},
		})
	}))
	svc := NewAnalyticsService(h.client, h.store, testLogger())

	if err := svc.ListExpenses(context.Background(), api.ListFilter{Page: 3, Limit: 10}); err != nil {
		t.Fatal(err)
	}
	meta := h.store.State().Expenses.ListMeta
	if meta == nil || meta.Page != 3 || meta.TotalPages != 4 {
		t.Fatalf("meta = %+v", meta)
	}
	if got := h.store.State().Expenses.List; len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("list = %+v", got)
	}
}
