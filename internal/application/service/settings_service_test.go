package service

import (
	"context"
	"testing"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrinterSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{})

	settings, err := svc.GetPrinterSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 32, settings.PaperWidth)
	assert.Equal(t, 1, settings.DefaultCopies)
}

func TestUpdatePrinterSettingsValidation(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{})
	ctx := context.Background()

	_, err := svc.UpdatePrinterSettings(ctx, &UpdatePrinterSettingsInput{PaperWidth: 40, DefaultCopies: 1})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.UpdatePrinterSettings(ctx, &UpdatePrinterSettingsInput{PaperWidth: 32, DefaultCopies: 0})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdatePrinterSettingsRoundTrip(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	saved, err := svc.UpdatePrinterSettings(ctx, &UpdatePrinterSettingsInput{
		KitchenDevice: "/dev/usb/lp0",
		ClientDevice:  "192.168.1.50:9100",
		PaperWidth:    48,
		DefaultCopies: 2,
	})
	require.NoError(t, err)

	got, err := svc.GetPrinterSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, "/dev/usb/lp0", got.KitchenDevice)
	assert.Equal(t, 48, got.PaperWidth)
}

func TestGetFormatConfigDefaults(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{})

	cfg, err := svc.GetFormatConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.TextSizeBig, cfg.ComandaTitleSize)
	assert.Equal(t, 1, cfg.ComandaCopies)
	assert.NotEmpty(t, cfg.BusinessName)
}

func TestUpdateFormatConfigValidation(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{})
	ctx := context.Background()

	bad := entity.DefaultPrintFormatConfig()
	bad.ComandaCopies = 0
	_, err := svc.UpdateFormatConfig(ctx, bad)
	require.Error(t, err)

	bad = entity.DefaultPrintFormatConfig()
	bad.BusinessName = ""
	_, err = svc.UpdateFormatConfig(ctx, bad)
	require.Error(t, err)
}

func TestUpdateFormatConfigPreservesIdentity(t *testing.T) {
	existing := entity.DefaultPrintFormatConfig()
	existing.ID = uuid.New()
	repo := &stubSettingsRepo{cfg: existing}
	svc := NewSettingsService(repo)

	input := entity.DefaultPrintFormatConfig()
	input.BusinessName = "Lomitería El Fogón"
	input.ComandaCopies = 3

	saved, err := svc.UpdateFormatConfig(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, saved.ID)
	assert.Equal(t, "Lomitería El Fogón", saved.BusinessName)
	assert.Equal(t, 3, saved.ComandaCopies)
}
