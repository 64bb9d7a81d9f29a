package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	billingapp "github.com/labelworks/backend/internal/application/billing"
	"github.com/labelworks/backend/internal/interfaces/http/dto"
)

// InvoiceHandler handles usage upload and invoice query endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Upload ingests one customer's monthly usage batch and issues or re-issues
// the month's invoice.
func (h *InvoiceHandler) Upload(c *gin.Context) {
	var req billingapp.UploadInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	resp, err := h.invoiceService.Upload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListIssued returns the invoices issued to a company, most recent first.
func (h *InvoiceHandler) ListIssued(c *gin.Context) {
	companyCode := c.Query("companyCode")

	invoices, err := h.invoiceService.ListIssued(c.Request.Context(), companyCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// Summaries returns the per-store usage aggregates for a company and month.
func (h *InvoiceHandler) Summaries(c *gin.Context) {
	companyCode := c.Query("companyCode")
	issuedDate := c.Query("issuedDate")

	reports, err := h.invoiceService.Summaries(c.Request.Context(), companyCode, issuedDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reports)
}

// RegisterRoutes registers all invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/upload", h.Upload)
		invoices.GET("/issued", h.ListIssued)
		invoices.GET("/summaries", h.Summaries)
	}
}
