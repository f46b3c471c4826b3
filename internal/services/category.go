package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/debounce"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/store"
)

// CategoryService manages spend categories. Color edits are debounced per
// category so a drag across the picker commits only the final color.
type CategoryService struct {
	client   *api.Client
	store    *store.Store
	notifier notify.Notifier
	logger   *applog.Logger
	interval time.Duration

	mu        sync.Mutex
	debounced map[string]*debounce.Debouncer
}

func NewCategoryService(client *api.Client, st *store.Store, notifier notify.Notifier, interval time.Duration, logger *applog.Logger) *CategoryService {
	return &CategoryService{
		client:    client,
		store:     st,
		notifier:  notifier,
		logger:    logger.WithComponent(applog.ComponentStore),
		interval:  interval,
		debounced: make(map[string]*debounce.Debouncer),
	}
}

// Refresh replaces the category list from the backend.
func (s *CategoryService) Refresh(ctx context.Context) error {
	resp := s.client.Categories.List(ctx)
	if !resp.OK() {
		return fmt.Errorf("fetch categories: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.SetCategories{Categories: resp.Data})
	return nil
}

// Create adds a category and inserts it sorted.
func (s *CategoryService) Create(ctx context.Context, name, color string) error {
	resp := s.client.Categories.Create(ctx, api.CreateCategory{CategoryName: name, CategoryColor: color})
	if !resp.OK() {
		return fmt.Errorf("create category: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.AddCategory{Category: resp.Data})
	s.notifier.Success("Category added")
	return nil
}

// Rename updates a category's name immediately.
func (s *CategoryService) Rename(ctx context.Context, id, name string) error {
	resp := s.client.Categories.Update(ctx, id, api.CreateCategory{CategoryName: name})
	if !resp.OK() {
		return fmt.Errorf("rename category: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.UpdateCategory{Category: resp.Data})
	return nil
}

// SetColor commits a category color after the picker settles. Only the last
// color chosen within the interval reaches the backend. The commit outlives
// the request that scheduled it, so the callback must not inherit the
// request's cancellation.
func (s *CategoryService) SetColor(ctx context.Context, id, color string) {
	ctx = context.WithoutCancel(ctx)
	s.debouncer(id).Trigger(func() {
		resp := s.client.Categories.Update(ctx, id, api.CreateCategory{CategoryColor: color})
		if !resp.OK() {
			s.logger.Warn("Color update failed", applog.FieldCategory, id, applog.FieldError, resp.Err.Message)
			return
		}
		s.store.Dispatch(store.UpdateCategory{Category: resp.Data})
	})
}

// Delete removes categories and drops them from the store.
func (s *CategoryService) Delete(ctx context.Context, ids []string) error {
	resp := s.client.Categories.Delete(ctx, ids)
	if !resp.OK() {
		return fmt.Errorf("delete categories: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.RemoveCategories{IDs: ids})
	s.notifier.Success("Category deleted")
	return nil
}

// AddSubcategories creates subcategories under a category in one call.
func (s *CategoryService) AddSubcategories(ctx context.Context, categoryID string, subs []api.NewSubcategory) error {
	resp := s.client.Categories.CreateSubcategoriesBulk(ctx, categoryID, subs)
	if !resp.OK() {
		return fmt.Errorf("create subcategories: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.AddSubcategories{CategoryID: categoryID, Subcategories: resp.Data})
	return nil
}

// UpdateSubcategory patches one subcategory.
func (s *CategoryService) UpdateSubcategory(ctx context.Context, id string, patch api.SubcategoryPatch) error {
	resp := s.client.Categories.UpdateSubcategory(ctx, id, patch)
	if !resp.OK() {
		return fmt.Errorf("update subcategory: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.UpdateSubcategory{Subcategory: resp.Data})
	return nil
}

// DeleteSubcategories removes subcategories and drops them from the store.
func (s *CategoryService) DeleteSubcategories(ctx context.Context, ids []string) error {
	resp := s.client.Categories.DeleteSubcategories(ctx, ids)
	if !resp.OK() {
		return fmt.Errorf("delete subcategories: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.RemoveSubcategories{IDs: ids})
	return nil
}

// Stop cancels any pending color commits.
func (s *CategoryService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debounced {
		d.Stop()
	}
}

func (s *CategoryService) debouncer(id string) *debounce.Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.debounced[id]
	if !ok {
		d = debounce.New(s.interval)
		s.debounced[id] = d
	}
	return d
}
