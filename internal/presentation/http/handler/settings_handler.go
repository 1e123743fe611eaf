package handler

import (
	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/dto/request"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles print configuration endpoints
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPrinterSettings handles GET /settings/printers
func (h *SettingsHandler) GetPrinterSettings(c *gin.Context) {
	settings, err := h.settingsService.GetPrinterSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer settings retrieved successfully", settings)
}

// UpdatePrinterSettings handles PUT /settings/printers
func (h *SettingsHandler) UpdatePrinterSettings(c *gin.Context) {
	var req request.UpdatePrinterSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdatePrinterSettings(c.Request.Context(), &service.UpdatePrinterSettingsInput{
		KitchenDevice: req.KitchenDevice,
		ClientDevice:  req.ClientDevice,
		PaperWidth:    req.PaperWidth,
		DefaultCopies: req.DefaultCopies,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer settings updated successfully", settings)
}

// GetFormatConfig handles GET /settings/format
func (h *SettingsHandler) GetFormatConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetFormatConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Format configuration retrieved successfully", cfg)
}

// UpdateFormatConfig handles PUT /settings/format
func (h *SettingsHandler) UpdateFormatConfig(c *gin.Context) {
	var req request.UpdateFormatConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := h.settingsService.UpdateFormatConfig(c.Request.Context(), &entity.PrintFormatConfig{
		ComandaTitleSize:     req.ComandaTitleSize,
		ComandaProductSize:   req.ComandaProductSize,
		ComandaShowPrices:    req.ComandaShowPrices,
		ComandaCopies:        req.ComandaCopies,
		ComandaCustomFields:  req.ComandaCustomFields,
		TicketHeaderSize:     req.TicketHeaderSize,
		TicketProductSize:    req.TicketProductSize,
		TicketTotalSize:      req.TicketTotalSize,
		TicketCustomHeader:   req.TicketCustomHeader,
		TicketClosingMessage: req.TicketClosingMessage,
		TicketShowLogo:       req.TicketShowLogo,
		BusinessName:         req.BusinessName,
		BusinessAddress:      req.BusinessAddress,
		BusinessPhone:        req.BusinessPhone,
		BusinessTaxID:        req.BusinessTaxID,
		BusinessExtraLine:    req.BusinessExtraLine,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Format configuration updated successfully", cfg)
}
