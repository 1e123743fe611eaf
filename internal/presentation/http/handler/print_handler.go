package handler

import (
	"fmt"
	"net/http"

	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/dto/request"
	"github.com/dvillalba/fogonpos-api/pkg/printer"
	"github.com/gin-gonic/gin"
)

// PrintHandler exposes the ticket printing endpoints. The frontend
// polls these from the cashier screen, so responses use the flat
// {success, ...} envelope it expects rather than the API envelope.
type PrintHandler struct {
	printService *service.PrintService
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService) *PrintHandler {
	return &PrintHandler{printService: printService}
}

func printError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// printDispatchError reports a failed dispatch. When some copies made
// it out before the failure, the cashier needs to know how many so the
// retry does not duplicate them.
func printDispatchError(c *gin.Context, res printer.Result, err error) {
	body := gin.H{
		"success": false,
		"error":   err.Error(),
	}
	if res.Requested > 0 {
		body["requested"] = res.Requested
		body["printed"] = res.Printed
		if res.Partial() {
			body["message"] = fmt.Sprintf("printed %d of %d copies", res.Printed, res.Requested)
		}
	}
	c.JSON(http.StatusInternalServerError, body)
}

func copiesMessage(res printer.Result) string {
	if res.Requested == 1 {
		return "ticket printed"
	}
	return fmt.Sprintf("printed %d of %d copies", res.Printed, res.Requested)
}

// ListPrinters handles GET /api/printers
func (h *PrintHandler) ListPrinters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"printers": h.printService.ListPrinters(),
	})
}

// PrintKitchen handles POST /api/print/kitchen
func (h *PrintHandler) PrintKitchen(c *gin.Context) {
	var req request.PrintDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		printError(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.printService.PrintKitchen(c.Request.Context(), req.Data.ToSale(), *req.PrinterIndex, req.Copies)
	if err != nil {
		printDispatchError(c, res, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": copiesMessage(res),
		"copies":  res.Printed,
	})
}

// PrintClient handles POST /api/print/client
func (h *PrintHandler) PrintClient(c *gin.Context) {
	var req request.PrintDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		printError(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.printService.PrintClient(c.Request.Context(), req.Data.ToSale(), *req.PrinterIndex)
	if err != nil {
		printDispatchError(c, res, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": copiesMessage(res),
	})
}

// PrintBoth handles POST /api/print/both. Kitchen and client tickets
// are dispatched independently so a kitchen jam still leaves the
// customer with a receipt; per-document results are always reported.
func (h *PrintHandler) PrintBoth(c *gin.Context) {
	var req request.PrintBothRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		printError(c, http.StatusBadRequest, err)
		return
	}

	sale := req.Data.ToSale()
	results, err := h.printService.PrintBoth(c.Request.Context(), sale, *req.KitchenPrinter, *req.ClientPrinter, req.Copies)

	type docResult struct {
		Device    string `json:"device"`
		Requested int    `json:"requested"`
		Printed   int    `json:"printed"`
		Error     string `json:"error,omitempty"`
	}
	out := make([]docResult, 0, len(results))
	for _, r := range results {
		dr := docResult{Device: r.Device, Requested: r.Requested, Printed: r.Printed}
		if r.Err != nil {
			dr.Error = r.Err.Error()
		}
		out = append(out, dr)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"results": out,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "kitchen and client tickets printed",
		"results": out,
	})
}

// TestPrint handles POST /api/print/test
func (h *PrintHandler) TestPrint(c *gin.Context) {
	var req request.TestPrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		printError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.printService.TestPrint(c.Request.Context(), *req.PrinterIndex); err != nil {
		printError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "test page printed",
	})
}
