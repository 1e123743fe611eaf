package repository

import (
	"context"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for print configuration
// data access. Both documents are singletons: one row each.
type SettingsRepository interface {
	GetPrinterSettings(ctx context.Context) (*entity.PrinterSettings, error)
	SavePrinterSettings(ctx context.Context, settings *entity.PrinterSettings) error
	GetFormatConfig(ctx context.Context) (*entity.PrintFormatConfig, error)
	SaveFormatConfig(ctx context.Context, cfg *entity.PrintFormatConfig) error
}
