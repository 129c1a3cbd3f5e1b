package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

type SettingsRepository interface {
	Get(ctx context.Context) domain.SiteSettings
	// Update merges the set fields of input into the stored record. Only the
	// admin surface calls this; the core reads settings and never writes them.
	Update(ctx context.Context, input domain.UpdateSettingsInput) (domain.SiteSettings, error)
}

type settingsRepository struct {
	store store.Store
}

func NewSettingsRepository(s store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) Get(ctx context.Context) domain.SiteSettings {
	return store.Load(ctx, r.store, store.KeySettings, domain.SiteSettings{})
}

func (r *settingsRepository) Update(ctx context.Context, input domain.UpdateSettingsInput) (domain.SiteSettings, error) {
	settings := r.Get(ctx)
	if input.BG != nil {
		settings.BG = input.BG
	}
	if input.Logo != nil {
		settings.Logo = input.Logo
	}
	if input.LogoSize != nil {
		settings.LogoSize = *input.LogoSize
	}
	if input.SidebarText != nil {
		settings.SidebarText = input.SidebarText
	}
	return settings, store.Save(ctx, r.store, store.KeySettings, settings)
}
