package services

import (
	"context"
	"fmt"

	"github.com/jayPrakash10/expense-front/internal/api"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/store"
)

// ProfileService loads and edits the signed-in user's profile and settings.
type ProfileService struct {
	client   *api.Client
	store    *store.Store
	notifier notify.Notifier
	logger   *applog.Logger
}

func NewProfileService(client *api.Client, st *store.Store, notifier notify.Notifier, logger *applog.Logger) *ProfileService {
	return &ProfileService{
		client:   client,
		store:    st,
		notifier: notifier,
		logger:   logger.WithComponent(applog.ComponentSession),
	}
}

// Load fetches the profile into the store. Called once after sign-in.
func (s *ProfileService) Load(ctx context.Context) error {
	resp := s.client.Users.Profile(ctx)
	if !resp.OK() {
		return fmt.Errorf("fetch profile: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.SetProfile{User: resp.Data.User, Settings: resp.Data.Settings})
	return nil
}

// UpdateUser patches the profile fields.
func (s *ProfileService) UpdateUser(ctx context.Context, patch api.UserPatch) error {
	resp := s.client.Users.Update(ctx, patch)
	if !resp.OK() {
		return fmt.Errorf("update profile: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.PatchUser{User: resp.Data})
	s.notifier.Success("Profile updated")
	return nil
}

// UpdateSettings patches the currency or language setting.
func (s *ProfileService) UpdateSettings(ctx context.Context, patch api.SettingsPatch) error {
	resp := s.client.Users.UpdateSettings(ctx, patch)
	if !resp.OK() {
		return fmt.Errorf("update settings: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.PatchSettings{Settings: resp.Data})
	s.notifier.Success("Settings saved")
	return nil
}

// SetQuickAdd replaces the dashboard quick-add shortcuts.
func (s *ProfileService) SetQuickAdd(ctx context.Context, subcategoryIDs []string) error {
	resp := s.client.Users.UpdateQuickAdd(ctx, subcategoryIDs)
	if !resp.OK() {
		return fmt.Errorf("update quick add: %s", resp.Err.Message)
	}
	s.store.Dispatch(store.PatchSettings{Settings: resp.Data})
	s.notifier.Success("Shortcuts updated")
	return nil
}
