package settings

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/view"
)

// Service applies the global cosmetic record to a tab's document surface.
type Service interface {
	Get(ctx context.Context) domain.SiteSettings
	Update(ctx context.Context, input domain.UpdateSettingsInput) (domain.SiteSettings, error)
	Apply(ctx context.Context, doc *view.Document)
}

type service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) Service {
	return &service{settingsRepo: settingsRepo}
}

func (s *service) Get(ctx context.Context) domain.SiteSettings {
	return s.settingsRepo.Get(ctx)
}

func (s *service) Update(ctx context.Context, input domain.UpdateSettingsInput) (domain.SiteSettings, error) {
	return s.settingsRepo.Update(ctx, input)
}

// Apply is idempotent: every patch overwrites the final stated value, so
// repeated calls leave the document exactly as a single call would. Absent
// fields touch nothing, keeping whatever the document already shows.
func (s *service) Apply(ctx context.Context, doc *view.Document) {
	settings := s.settingsRepo.Get(ctx)

	if settings.BG != nil && *settings.BG != "" {
		doc.SetBackground(*settings.BG)
	}
	if settings.Logo != nil && *settings.Logo != "" {
		doc.SetBrandLogo(*settings.Logo, settings.LogoHeight())
	}
	if settings.SidebarText != nil && *settings.SidebarText != "" {
		doc.SetSidebarText(*settings.SidebarText)
	}
}
