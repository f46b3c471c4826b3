package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/store"
)

func TestRefreshSortsCategories(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"_id": "c2", "category_name": "Travel", "category_color": "#00f"},
			{"_id": "c1", "category_name": "Food", "category_color": "#f00"},
		}})
	}))
	svc := NewCategoryService(h.client, h.store, h.notifier, time.Second, testLogger())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	cats := h.store.State().Categories
	if len(cats) != 2 || cats[0].CategoryName != "Food" {
		t.Fatalf("categories = %+v", cats)
	}
}

func TestSetColorCommitsOnlyLastPick(t *testing.T) {
	var mu sync.Mutex
	var colors []string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patch api.CreateCategory
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			t.Fatal(err)
		}
		mu.Lock()
		colors = append(colors, patch.CategoryColor)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"_id": "c1", "category_name": "Food", "category_color": patch.CategoryColor,
		}})
	}))
	svc := NewCategoryService(h.client, h.store, h.notifier, 20*time.Millisecond, testLogger())
	t.Cleanup(svc.Stop)
	h.store.Dispatch(store.SetCategories{Categories: []api.Category{{ID: "c1", CategoryName: "Food"}}})

	ctx := context.Background()
	svc.SetColor(ctx, "c1", "#111")
	svc.SetColor(ctx, "c1", "#222")
	svc.SetColor(ctx, "c1", "#333")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(colors) != 1 || colors[0] != "#333" {
		t.Fatalf("committed colors = %v, want only #333", colors)
	}
	if got := h.store.State().Categories[0].CategoryColor; got != "#333" {
		t.Fatalf("stored color = %q", got)
	}
}

// The browser's request is answered before the debounce fires, which cancels
// its context. The commit must still reach the backend.
func TestSetColorSurvivesCancelledContext(t *testing.T) {
	var mu sync.Mutex
	var colors []string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patch api.CreateCategory
		_ = json.NewDecoder(r.Body).Decode(&patch)
		mu.Lock()
		colors = append(colors, patch.CategoryColor)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"_id": "c1", "category_name": "Food", "category_color": patch.CategoryColor,
		}})
	}))
	svc := NewCategoryService(h.client, h.store, h.notifier, 20*time.Millisecond, testLogger())
	t.Cleanup(svc.Stop)
	h.store.Dispatch(store.SetCategories{Categories: []api.Category{{ID: "c1", CategoryName: "Food"}}})

	ctx, cancel := context.WithCancel(context.Background())
	svc.SetColor(ctx, "c1", "#abc")
	cancel()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(colors) != 1 || colors[0] != "#abc" {
		t.Fatalf("committed colors = %v, want #abc", colors)
	}
}

func TestSubcategoryBulkCreate(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subcategories/bulk" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"_id": "s1", "name": "Groceries", "color": "#0f0"},
		}})
	}))
	svc := NewCategoryService(h.client, h.store, h.notifier, time.Second, testLogger())
	h.store.Dispatch(store.SetCategories{Categories: []api.Category{{ID: "c1", CategoryName: "Food"}}})

	err := svc.AddSubcategories(context.Background(), "c1", []api.NewSubcategory{{Name: "Groceries", Color: "#0f0"}})
	if err != nil {
		t.Fatal(err)
	}
	subs := h.store.State().Categories[0].Subcategories
	if len(subs) != 1 || subs[0].ID != "s1" {
		t.Fatalf("subcategories = %+v", subs)
	}
}
