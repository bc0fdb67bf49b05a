package service

import (
	"context"
	"fmt"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// SettingsService manages per-company settings.
type SettingsService interface {
	Resource[model.Settings]

	// Upsert creates the settings of s.CompanyID or replaces them.
	Upsert(ctx context.Context, s *model.Settings) (*model.Settings, error)
}

type settingsService struct {
	*CRUD[model.Settings]
	repo repository.SettingsRepository
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{
		CRUD: NewCRUD("settings", repo, Hooks[model.Settings]{
			SetKey: func(s *model.Settings, id string) { s.CompanyID = id },
		}),
		repo: repo,
	}
}

func (s *settingsService) Upsert(ctx context.Context, in *model.Settings) (*model.Settings, error) {
	if in.CompanyID == "" {
		return nil, ErrIDRequired
	}
	stored, err := s.repo.Upsert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return stored, nil
}
