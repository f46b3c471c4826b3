package http

import (
	"net/http"
	"strings"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/core"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/store"
)

type settingsView struct {
	UserName   string
	Email      string
	Currency   string
	Currencies []string
	Categories []api.Category
	QuickAdd   []quickAddOption
}

// quickAddOption is one subcategory row in the shortcut manager.
type quickAddOption struct {
	SubcategoryID string
	Name          string
	Category      string
	Enabled       bool
}

func buildQuickAddOptions(state store.State) []quickAddOption {
	enabled := make(map[string]bool, len(state.Settings.QuickAdd))
	for _, id := range state.Settings.QuickAdd {
		enabled[id] = true
	}
	var out []quickAddOption
	for _, c := range state.Categories {
		for _, sub := range c.Subcategories {
			out = append(out, quickAddOption{
				SubcategoryID: sub.ID,
				Name:          sub.Name,
				Category:      c.CategoryName,
				Enabled:       enabled[sub.ID],
			})
		}
	}
	return out
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.categories.Refresh(r.Context()); err != nil {
		s.logger.Warn("Category refresh failed", applog.FieldError, err.Error())
	}
	state := s.store.State()
	s.render(w, "settings.html", settingsView{
		UserName:   state.User.Name,
		Email:      state.User.Email,
		Currency:   state.Settings.Currency,
		Currencies: core.CurrencyCodes(),
		Categories: state.Categories,
		QuickAdd:   buildQuickAddOptions(state),
	})
}

// handleQuickAddToggle adds or removes one subcategory from the dashboard
// shortcuts and commits the whole list.
func (s *Server) handleQuickAddToggle(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	id := sanitizeInput(r.Form.Get("subcategory"))
	if id == "" {
		BadRequestError("Unknown subcategory").Write(w)
		return
	}

	current := s.store.State().Settings.QuickAdd
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, existing := range current {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
	}

	if err := s.profile.SetQuickAdd(r.Context(), next); err != nil {
		InternalServerError("Could not save the shortcuts").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerSettingsChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "quick_add.html", buildQuickAddOptions(s.store.State()))
}

func (s *Server) handleCurrencyChange(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	code := strings.ToUpper(sanitizeInput(r.Form.Get("currency")))
	if _, ok := core.LookupCurrency(code); !ok {
		BadRequestError("Unknown currency").Write(w)
		return
	}

	if err := s.profile.UpdateSettings(r.Context(), api.SettingsPatch{Currency: code}); err != nil {
		InternalServerError("Could not save the currency").DrainNotifications(s.notifier).Write(w)
		return
	}
	NewHTMXResponse().
		TriggerSettingsChanged().
		DrainNotifications(s.notifier).
		Write(w)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	patch := api.UserPatch{
		Name:  sanitizeInput(r.Form.Get("name")),
		Phone: sanitizeInput(r.Form.Get("phone")),
	}

	if err := s.profile.UpdateUser(r.Context(), patch); err != nil {
		InternalServerError("Could not save the profile").DrainNotifications(s.notifier).Write(w)
		return
	}
	NewHTMXResponse().DrainNotifications(s.notifier).Write(w)
}

func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	name := sanitizeInput(r.Form.Get("name"))
	color := sanitizeInput(r.Form.Get("color"))
	if name == "" {
		UnprocessableEntityError("Category name is required").Write(w)
		return
	}

	if err := s.categories.Create(r.Context(), name, color); err != nil {
		InternalServerError("Could not create the category").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}

func (s *Server) handleCategoryRename(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	id := r.PathValue("id")
	name := sanitizeInput(r.Form.Get("name"))
	if name == "" {
		UnprocessableEntityError("Category name is required").Write(w)
		return
	}

	if err := s.categories.Rename(r.Context(), id, name); err != nil {
		InternalServerError("Could not rename the category").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}

// handleCategoryColor schedules a debounced color commit and acknowledges
// immediately so the picker stays responsive.
func (s *Server) handleCategoryColor(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	id := r.PathValue("id")
	color := sanitizeInput(r.Form.Get("color"))

	s.categories.SetColor(r.Context(), id, color)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.categories.Delete(r.Context(), []string{id}); err != nil {
		InternalServerError("Could not delete the category").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}

func (s *Server) handleSubcategoryCreate(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	categoryID := r.PathValue("id")
	name := sanitizeInput(r.Form.Get("name"))
	color := sanitizeInput(r.Form.Get("color"))
	if name == "" {
		UnprocessableEntityError("Subcategory name is required").Write(w)
		return
	}

	subs := []api.NewSubcategory{{Name: name, Color: color}}
	if err := s.categories.AddSubcategories(r.Context(), categoryID, subs); err != nil {
		InternalServerError("Could not create the subcategory").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}

func (s *Server) handleSubcategoryUpdate(w http.ResponseWriter, r *http.Request) {
	if b := parseFormOrFail(r); b != nil {
		b.Write(w)
		return
	}
	id := r.PathValue("id")
	patch := api.SubcategoryPatch{
		Name:  sanitizeInput(r.Form.Get("name")),
		Color: sanitizeInput(r.Form.Get("color")),
	}

	if err := s.categories.UpdateSubcategory(r.Context(), id, patch); err != nil {
		InternalServerError("Could not update the subcategory").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}

func (s *Server) handleSubcategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.categories.DeleteSubcategories(r.Context(), []string{id}); err != nil {
		InternalServerError("Could not delete the subcategory").DrainNotifications(s.notifier).Write(w)
		return
	}
	b := NewHTMXResponse().TriggerCategoriesChanged().DrainNotifications(s.notifier)
	s.renderTo(b, w, "categories.html", s.store.State().Categories)
}
