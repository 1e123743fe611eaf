package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/pkg/printer"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memSettingsRepo struct {
	settings *entity.PrinterSettings
	cfg      *entity.PrintFormatConfig
}

func (m *memSettingsRepo) GetPrinterSettings(ctx context.Context) (*entity.PrinterSettings, error) {
	return m.settings, nil
}

func (m *memSettingsRepo) SavePrinterSettings(ctx context.Context, s *entity.PrinterSettings) error {
	m.settings = s
	return nil
}

func (m *memSettingsRepo) GetFormatConfig(ctx context.Context) (*entity.PrintFormatConfig, error) {
	return m.cfg, nil
}

func (m *memSettingsRepo) SaveFormatConfig(ctx context.Context, cfg *entity.PrintFormatConfig) error {
	m.cfg = cfg
	return nil
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
func (nullWriter) Close() error                { return nil }

// failAfter returns an opener that succeeds for the first n opens on a
// device and fails afterwards.
func failAfter(n int) printer.OpenFunc {
	opens := make(map[string]int)
	return func(ctx context.Context, device string) (io.WriteCloser, error) {
		opens[device]++
		if opens[device] > n {
			return nil, errors.New("paper jam")
		}
		return nullWriter{}, nil
	}
}

func workingOpener(ctx context.Context, device string) (io.WriteCloser, error) {
	return nullWriter{}, nil
}

func newPrintRouter(open printer.OpenFunc, devices []printer.Descriptor) *gin.Engine {
	dispatcher := printer.NewDispatcher(open, time.Second)
	svc := service.NewPrintService(dispatcher, &memSettingsRepo{}, func() []printer.Descriptor {
		return devices
	})
	h := NewPrintHandler(svc)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/printers", h.ListPrinters)
	api.POST("/print/kitchen", h.PrintKitchen)
	api.POST("/print/client", h.PrintClient)
	api.POST("/print/both", h.PrintBoth)
	api.POST("/print/test", h.TestPrint)
	return router
}

func twoPrinters() []printer.Descriptor {
	return []printer.Descriptor{
		{ID: "/dev/usb/lp0", Name: "lp0", VendorID: "04b8", ProductID: "0e15"},
		{ID: "/dev/usb/lp1", Name: "lp1"},
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func saleBody() map[string]interface{} {
	return map[string]interface{}{
		"number":    12,
		"orderType": "pickup",
		"items": []map[string]interface{}{
			{"name": "Hamburguesa", "price": 25000, "quantity": 2},
		},
		"subtotal": 50000,
		"total":    50000,
		"payments": []map[string]interface{}{
			{"method": "cash", "amount": 50000},
		},
	}
}

func TestListPrintersEndpoint(t *testing.T) {
	router := newPrintRouter(workingOpener, twoPrinters())

	req := httptest.NewRequest(http.MethodGet, "/api/printers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool                 `json:"success"`
		Printers []printer.Descriptor `json:"printers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Printers, 2)
	assert.Equal(t, "04b8", resp.Printers[0].VendorID)
}

func TestPrintKitchenEndpoint(t *testing.T) {
	router := newPrintRouter(workingOpener, twoPrinters())

	w := postJSON(router, "/api/print/kitchen", map[string]interface{}{
		"data":         saleBody(),
		"printerIndex": 0,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestPrintKitchenRejectsMissingPrinterIndex(t *testing.T) {
	router := newPrintRouter(workingOpener, twoPrinters())

	w := postJSON(router, "/api/print/kitchen", map[string]interface{}{
		"data": saleBody(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestPrintClientDomainFailureReturns500(t *testing.T) {
	// No printers attached: resolving index 0 is a domain failure and
	// must surface as 500 with the flat error envelope.
	router := newPrintRouter(workingOpener, nil)

	w := postJSON(router, "/api/print/client", map[string]interface{}{
		"data":         saleBody(),
		"printerIndex": 0,
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestPrintKitchenPartialCopiesReported(t *testing.T) {
	// 3 copies requested, the device jams after the first: the
	// response is an error but still reports what made it out.
	router := newPrintRouter(failAfter(1), twoPrinters())

	w := postJSON(router, "/api/print/kitchen", map[string]interface{}{
		"data":         saleBody(),
		"printerIndex": 0,
		"copies":       3,
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "paper jam")
	assert.Equal(t, float64(3), resp["requested"])
	assert.Equal(t, float64(1), resp["printed"])
	assert.Equal(t, "printed 1 of 3 copies", resp["message"])
}

func TestPrintBothEndpoint(t *testing.T) {
	router := newPrintRouter(workingOpener, twoPrinters())

	w := postJSON(router, "/api/print/both", map[string]interface{}{
		"data":           saleBody(),
		"kitchenPrinter": 0,
		"clientPrinter":  1,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Results []struct {
			Device    string `json:"device"`
			Requested int    `json:"requested"`
			Printed   int    `json:"printed"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "/dev/usb/lp0", resp.Results[0].Device)
	assert.Equal(t, 1, resp.Results[0].Printed)
	assert.Equal(t, "/dev/usb/lp1", resp.Results[1].Device)
}

func TestPrintTestEndpoint(t *testing.T) {
	router := newPrintRouter(workingOpener, twoPrinters())

	w := postJSON(router, "/api/print/test", map[string]interface{}{
		"printerIndex": 1,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}
