package api

import (
	"context"
	"net/http"
)

// CategoriesAPI covers spend-category management.
type CategoriesAPI struct{ c *Client }

// List returns all categories with their subcategories.
func (a CategoriesAPI) List(ctx context.Context) Response[[]Category] {
	return do[[]Category](a.c, ctx, http.MethodGet, "/subcategories", nil, nil)
}

// Create adds a category.
func (a CategoriesAPI) Create(ctx context.Context, category CreateCategory) Response[Category] {
	return do[Category](a.c, ctx, http.MethodPost, "/categories", nil, category)
}

// Update patches a category's name or color.
func (a CategoriesAPI) Update(ctx context.Context, id string, patch CreateCategory) Response[Category] {
	return do[Category](a.c, ctx, http.MethodPut, "/categories/"+id, nil, patch)
}

// Delete removes categories by id.
func (a CategoriesAPI) Delete(ctx context.Context, ids []string) Response[struct{}] {
	return do[struct{}](a.c, ctx, http.MethodDelete, "/categories", nil, map[string][]string{"ids": ids})
}

// CreateSubcategoriesBulk adds subcategories under one category.
func (a CategoriesAPI) CreateSubcategoriesBulk(ctx context.Context, categoryID string, subs []NewSubcategory) Response[[]Subcategory] {
	body := struct {
		CategoryID    string           `json:"category_id"`
		Subcategories []NewSubcategory `json:"subcategories"`
	}{CategoryID: categoryID, Subcategories: subs}
	return do[[]Subcategory](a.c, ctx, http.MethodPost, "/subcategories/bulk", nil, body)
}

// UpdateSubcategory patches a single subcategory.
func (a CategoriesAPI) UpdateSubcategory(ctx context.Context, id string, patch SubcategoryPatch) Response[Subcategory] {
	return do[Subcategory](a.c, ctx, http.MethodPut, "/subcategories/"+id, nil, patch)
}

// DeleteSubcategories removes subcategories by id.
func (a CategoriesAPI) DeleteSubcategories(ctx context.Context, ids []string) Response[struct{}] {
	return do[struct{}](a.c, ctx, http.MethodDelete, "/subcategories", nil, map[string][]string{"ids": ids})
}
