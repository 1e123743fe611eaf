package service

import (
	"context"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
)

// SettingsService handles printer selection and ticket format config
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetPrinterSettings retrieves printer settings, with defaults before
// the first save
func (s *SettingsService) GetPrinterSettings(ctx context.Context) (*entity.PrinterSettings, error) {
	settings, err := s.settingsRepo.GetPrinterSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.PrinterSettings{PaperWidth: 32, DefaultCopies: 1}
	}
	return settings, nil
}

// UpdatePrinterSettingsInput represents the printer settings input
type UpdatePrinterSettingsInput struct {
	KitchenDevice string
	ClientDevice  string
	PaperWidth    int
	DefaultCopies int
}

// UpdatePrinterSettings persists the printer selection
func (s *SettingsService) UpdatePrinterSettings(ctx context.Context, input *UpdatePrinterSettingsInput) (*entity.PrinterSettings, error) {
	if input.PaperWidth != 32 && input.PaperWidth != 48 {
		return nil, apperror.NewBadRequestError("Paper width must be 32 or 48 characters")
	}
	if input.DefaultCopies < 1 {
		return nil, apperror.NewBadRequestError("Default copies must be at least 1")
	}

	settings, err := s.settingsRepo.GetPrinterSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.PrinterSettings{}
	}

	settings.KitchenDevice = input.KitchenDevice
	settings.ClientDevice = input.ClientDevice
	settings.PaperWidth = input.PaperWidth
	settings.DefaultCopies = input.DefaultCopies

	if err := s.settingsRepo.SavePrinterSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetFormatConfig retrieves the ticket format config, with defaults
// before the first save
func (s *SettingsService) GetFormatConfig(ctx context.Context) (*entity.PrintFormatConfig, error) {
	cfg, err := s.settingsRepo.GetFormatConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = entity.DefaultPrintFormatConfig()
	}
	return cfg, nil
}

// UpdateFormatConfig persists the ticket format config
func (s *SettingsService) UpdateFormatConfig(ctx context.Context, input *entity.PrintFormatConfig) (*entity.PrintFormatConfig, error) {
	if input.ComandaCopies < 1 {
		return nil, apperror.NewBadRequestError("Comanda copies must be at least 1")
	}
	if input.BusinessName == "" {
		return nil, apperror.NewBadRequestError("Business name is required")
	}

	cfg, err := s.settingsRepo.GetFormatConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &entity.PrintFormatConfig{}
	}

	id, created := cfg.ID, cfg.CreatedAt
	*cfg = *input
	cfg.ID, cfg.CreatedAt = id, created

	if err := s.settingsRepo.SaveFormatConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
