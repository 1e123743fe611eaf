package repository

import (
	"context"
	"errors"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	domainRepo "github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetPrinterSettings returns the singleton printer settings row, or
// nil when nothing has been saved yet
func (r *settingsRepository) GetPrinterSettings(ctx context.Context) (*entity.PrinterSettings, error) {
	var settings entity.PrinterSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SavePrinterSettings(ctx context.Context, settings *entity.PrinterSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

// GetFormatConfig returns the singleton format config row, or nil
// when nothing has been saved yet
func (r *settingsRepository) GetFormatConfig(ctx context.Context) (*entity.PrintFormatConfig, error) {
	var cfg entity.PrintFormatConfig
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *settingsRepository) SaveFormatConfig(ctx context.Context, cfg *entity.PrintFormatConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
