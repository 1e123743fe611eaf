package handler

import (
	"time"

	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/dto/request"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/dto/response"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// SaleHandler handles sale recording and lookup endpoints
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale handles POST /sales
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// GetSale handles GET /sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// ListSales handles GET /sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	var req request.ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	req.PaginationParams.Validate()

	params := &repository.SaleFilterParams{
		Pagination: &req.PaginationParams,
		Status:     enum.SaleStatus(req.Status),
		OrderType:  enum.OrderType(req.OrderType),
	}
	if req.From != "" {
		from, err := time.Parse(dayLayout, req.From)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		params.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(dayLayout, req.To)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		// inclusive upper bound
		end := to.AddDate(0, 0, 1)
		params.To = &end
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// CancelSale handles POST /sales/:id/cancel
func (h *SaleHandler) CancelSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.CancelSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale cancelled successfully", sale)
}

// DailyReport handles GET /reports/daily. Defaults to today when no
// date is given.
func (h *SaleHandler) DailyReport(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	report, err := h.saleService.DailyReport(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report generated successfully", report)
}
