package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/dvillalba/fogonpos-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsRepo struct {
	settings *entity.PrinterSettings
	cfg      *entity.PrintFormatConfig
}

func (s *stubSettingsRepo) GetPrinterSettings(ctx context.Context) (*entity.PrinterSettings, error) {
	return s.settings, nil
}

func (s *stubSettingsRepo) SavePrinterSettings(ctx context.Context, settings *entity.PrinterSettings) error {
	s.settings = settings
	return nil
}

func (s *stubSettingsRepo) GetFormatConfig(ctx context.Context) (*entity.PrintFormatConfig, error) {
	return s.cfg, nil
}

func (s *stubSettingsRepo) SaveFormatConfig(ctx context.Context, cfg *entity.PrintFormatConfig) error {
	s.cfg = cfg
	return nil
}

// spyOpener collects everything written per device and can fail whole
// devices.
type spyOpener struct {
	mu     sync.Mutex
	jobs   map[string][][]byte
	broken map[string]bool
}

func newSpyOpener() *spyOpener {
	return &spyOpener{jobs: make(map[string][][]byte), broken: make(map[string]bool)}
}

type spyHandle struct {
	opener *spyOpener
	device string
	buf    bytes.Buffer
}

func (h *spyHandle) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

func (h *spyHandle) Close() error {
	h.opener.mu.Lock()
	defer h.opener.mu.Unlock()
	h.opener.jobs[h.device] = append(h.opener.jobs[h.device], h.buf.Bytes())
	return nil
}

func (o *spyOpener) open(ctx context.Context, device string) (io.WriteCloser, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.broken[device] {
		return nil, errors.New("printer offline")
	}
	return &spyHandle{opener: o, device: device}, nil
}

func newTestPrintService(opener *spyOpener, repo *stubSettingsRepo) *PrintService {
	dispatcher := printer.NewDispatcher(opener.open, time.Second)
	lister := func() []printer.Descriptor {
		return []printer.Descriptor{
			{ID: "/dev/usb/lp0", Name: "lp0"},
			{ID: "/dev/usb/lp1", Name: "lp1"},
		}
	}
	return NewPrintService(dispatcher, repo, lister)
}

func printTestSale() *entity.Sale {
	return &entity.Sale{
		Number:    3,
		SaleDate:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		OrderType: enum.OrderTypeDineIn,
		SubTotal:  40000,
		Total:     40000,
		Items: []entity.SaleItem{
			{ProductName: "Lomito árabe", UnitPrice: 20000, Quantity: 2},
		},
	}
}

func TestPrintKitchenUsesConfiguredCopies(t *testing.T) {
	opener := newSpyOpener()
	repo := &stubSettingsRepo{}
	repo.cfg = entity.DefaultPrintFormatConfig()
	repo.cfg.ComandaCopies = 2
	svc := newTestPrintService(opener, repo)

	res, err := svc.PrintKitchen(context.Background(), printTestSale(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Printed)
	require.Len(t, opener.jobs["/dev/usb/lp0"], 2)
	// Copies of the same document are byte-identical
	assert.Equal(t, opener.jobs["/dev/usb/lp0"][0], opener.jobs["/dev/usb/lp0"][1])
	assert.Contains(t, string(opener.jobs["/dev/usb/lp0"][0]), "2xLomito árabe")
	assert.NotContains(t, string(opener.jobs["/dev/usb/lp0"][0]), "20.000")
}

func TestPrintKitchenExplicitCopiesWin(t *testing.T) {
	opener := newSpyOpener()
	repo := &stubSettingsRepo{}
	svc := newTestPrintService(opener, repo)

	res, err := svc.PrintKitchen(context.Background(), printTestSale(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Printed)
	assert.Len(t, opener.jobs["/dev/usb/lp1"], 3)
}

func TestPrintClientSingleCopyWithPrices(t *testing.T) {
	opener := newSpyOpener()
	repo := &stubSettingsRepo{}
	svc := newTestPrintService(opener, repo)

	res, err := svc.PrintClient(context.Background(), printTestSale(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Printed)
	require.Len(t, opener.jobs["/dev/usb/lp0"], 1)
	assert.Contains(t, string(opener.jobs["/dev/usb/lp0"][0]), "TOTAL: Gs. 40.000")
}

func TestPrintRejectsUnknownPrinterIndex(t *testing.T) {
	opener := newSpyOpener()
	svc := newTestPrintService(opener, &stubSettingsRepo{})

	_, err := svc.PrintClient(context.Background(), printTestSale(), 5)
	assert.Error(t, err)

	_, err = svc.PrintClient(context.Background(), printTestSale(), -1)
	assert.Error(t, err)

	assert.Empty(t, opener.jobs)
}

func TestPrintBothDeliversBothDocuments(t *testing.T) {
	opener := newSpyOpener()
	svc := newTestPrintService(opener, &stubSettingsRepo{})

	results, err := svc.PrintBoth(context.Background(), printTestSale(), 0, 1, 1)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "/dev/usb/lp0", results[0].Device)
	assert.Equal(t, "/dev/usb/lp1", results[1].Device)
	assert.Contains(t, string(opener.jobs["/dev/usb/lp0"][0]), "COMANDA COCINA")
	assert.Contains(t, string(opener.jobs["/dev/usb/lp1"][0]), "TOTAL:")
}

func TestPrintBothClientStillPrintsWhenKitchenFails(t *testing.T) {
	opener := newSpyOpener()
	opener.broken["/dev/usb/lp0"] = true
	svc := newTestPrintService(opener, &stubSettingsRepo{})

	results, err := svc.PrintBoth(context.Background(), printTestSale(), 0, 1, 1)

	require.Error(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Len(t, opener.jobs["/dev/usb/lp1"], 1)
}

func TestTestPrint(t *testing.T) {
	opener := newSpyOpener()
	repo := &stubSettingsRepo{}
	svc := newTestPrintService(opener, repo)

	res, err := svc.TestPrint(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Printed)
	assert.Contains(t, string(opener.jobs["/dev/usb/lp1"][0]), "PRUEBA DE IMPRESION")
}

func TestPrintUsesConfiguredPaperWidth(t *testing.T) {
	opener := newSpyOpener()
	repo := &stubSettingsRepo{
		settings: &entity.PrinterSettings{PaperWidth: 48, DefaultCopies: 1},
	}
	svc := newTestPrintService(opener, repo)

	_, err := svc.PrintClient(context.Background(), printTestSale(), 0)

	require.NoError(t, err)
	job := string(opener.jobs["/dev/usb/lp0"][0])
	assert.Contains(t, job, string(bytes.Repeat([]byte{'-'}, 48)))
}
