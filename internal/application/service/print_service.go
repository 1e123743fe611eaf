package service

import (
	"context"
	"fmt"

	"github.com/dvillalba/fogonpos-api/internal/application/ticket"
	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/printer"
)

// PrintService renders tickets and forwards them to thermal printers.
type PrintService struct {
	dispatcher   *printer.Dispatcher
	settingsRepo repository.SettingsRepository
	listDevices  func() []printer.Descriptor
}

// NewPrintService creates a new print service. A nil lister falls
// back to USB autodetection.
func NewPrintService(dispatcher *printer.Dispatcher, settingsRepo repository.SettingsRepository, lister func() []printer.Descriptor) *PrintService {
	if lister == nil {
		lister = printer.ListDevices
	}
	return &PrintService{
		dispatcher:   dispatcher,
		settingsRepo: settingsRepo,
		listDevices:  lister,
	}
}

// ListPrinters enumerates attached printer devices.
func (s *PrintService) ListPrinters() []printer.Descriptor {
	return s.listDevices()
}

// printContext is the configuration snapshot one print call works
// against. Taken once per call so a concurrent config save cannot mix
// old and new layout options within a single document.
type printContext struct {
	cfg    *entity.PrintFormatConfig
	width  int
	copies int
}

func (s *PrintService) snapshot(ctx context.Context) (*printContext, error) {
	cfg, err := s.settingsRepo.GetFormatConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = entity.DefaultPrintFormatConfig()
	}

	settings, err := s.settingsRepo.GetPrinterSettings(ctx)
	if err != nil {
		return nil, err
	}
	width, copies := 32, cfg.ComandaCopies
	if settings != nil && settings.PaperWidth > 0 {
		width = settings.PaperWidth
	}
	if copies < 1 {
		copies = 1
	}

	return &printContext{cfg: cfg, width: width, copies: copies}, nil
}

func (s *PrintService) resolveDevice(index int) (string, error) {
	devices := s.listDevices()
	if index < 0 || index >= len(devices) {
		return "", fmt.Errorf("printer %d is not available (%d attached)", index, len(devices))
	}
	return devices[index].ID, nil
}

// PrintKitchen renders and prints the kitchen comanda. A copies value
// below 1 falls back to the configured comanda copy count.
func (s *PrintService) PrintKitchen(ctx context.Context, sale *entity.Sale, printerIndex, copies int) (printer.Result, error) {
	pc, err := s.snapshot(ctx)
	if err != nil {
		return printer.Result{}, err
	}
	device, err := s.resolveDevice(printerIndex)
	if err != nil {
		return printer.Result{}, err
	}
	if copies < 1 {
		copies = pc.copies
	}

	data := ticket.EncodeESCPOS(ticket.RenderKitchen(sale, pc.cfg), pc.width)
	res := s.dispatcher.Dispatch(ctx, device, data, copies)
	return res, res.Err
}

// PrintClient renders and prints the client ticket, always one copy.
func (s *PrintService) PrintClient(ctx context.Context, sale *entity.Sale, printerIndex int) (printer.Result, error) {
	pc, err := s.snapshot(ctx)
	if err != nil {
		return printer.Result{}, err
	}
	device, err := s.resolveDevice(printerIndex)
	if err != nil {
		return printer.Result{}, err
	}

	data := ticket.EncodeESCPOS(ticket.RenderClient(sale, pc.cfg), pc.width)
	res := s.dispatcher.Dispatch(ctx, device, data, 1)
	return res, res.Err
}

// PrintBoth prints the requested kitchen copies and then one client
// ticket. Both dispatches are attempted even if the first fails; the
// caller gets one result per document and decides what to retry.
func (s *PrintService) PrintBoth(ctx context.Context, sale *entity.Sale, kitchenIndex, clientIndex, copies int) ([]printer.Result, error) {
	pc, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	kitchenDevice, err := s.resolveDevice(kitchenIndex)
	if err != nil {
		return nil, err
	}
	clientDevice, err := s.resolveDevice(clientIndex)
	if err != nil {
		return nil, err
	}
	if copies < 1 {
		copies = pc.copies
	}

	kitchenData := ticket.EncodeESCPOS(ticket.RenderKitchen(sale, pc.cfg), pc.width)
	clientData := ticket.EncodeESCPOS(ticket.RenderClient(sale, pc.cfg), pc.width)

	results := []printer.Result{
		s.dispatcher.Dispatch(ctx, kitchenDevice, kitchenData, copies),
		s.dispatcher.Dispatch(ctx, clientDevice, clientData, 1),
	}
	for _, r := range results {
		if r.Err != nil {
			return results, r.Err
		}
	}
	return results, nil
}

// TestPrint sends the fixed diagnostic document to a printer.
func (s *PrintService) TestPrint(ctx context.Context, printerIndex int) (printer.Result, error) {
	pc, err := s.snapshot(ctx)
	if err != nil {
		return printer.Result{}, err
	}
	device, err := s.resolveDevice(printerIndex)
	if err != nil {
		return printer.Result{}, err
	}

	data := ticket.EncodeESCPOS(ticket.RenderTest(pc.cfg.BusinessName), pc.width)
	res := s.dispatcher.Dispatch(ctx, device, data, 1)
	return res, res.Err
}
