package handler

import (
	"net/http"
	"strconv"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/internal/validation"
	"pos-backend/pkg/pagination"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", staff, h.ListInvoices)
		invoices.GET("/:id", staff, h.GetInvoice)
		invoices.POST("", staff, h.CreateInvoice)
		invoices.POST("/from-order", staff, h.IssueFromOrder)
		invoices.PATCH("/:id/e-invoice-status", managers, h.UpdateEInvoiceStatus)
	}

	connection := router.Group("/api/e-invoice-connection")
	{
		connection.GET("", managers, h.GetConnection)
		connection.PUT("", managers, h.SaveConnection)
	}
}

// ListInvoices lists tax invoices
// @Summary      List invoices
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Items per page"
// @Param        store_code  query     string  false  "Filter by store"
// @Param        status      query     int     false  "E-invoice status code"
// @Param        number      query     string  false  "Invoice number search"
// @Success      200         {object}  response.Response{data=object}
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := pagination.Parse(c)
	var status *int
	if raw := c.Query("status"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			status = &parsed
		}
	}

	invoices, total, err := h.invoiceService.ListInvoices(
		c.Request.Context(), c.Query("store_code"), status, c.Query("number"), params.Page, params.Limit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// GetInvoice fetches one invoice with its lines
// @Summary      Get invoice
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=model.Invoice}
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

// CreateInvoice creates a tax invoice from raw lines
// @Summary      Create invoice
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.InvoiceInput  true  "Invoice"
// @Success      201      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var in validation.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// IssueFromOrder snapshots a paid order into a draft invoice
// @Summary      Issue invoice from order
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.IssueInvoiceRequest  true  "Source order and buyer details"
// @Success      201      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Router       /api/invoices/from-order [post]
func (h *InvoiceHandler) IssueFromOrder(c *gin.Context) {
	var req service.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	invoice, err := h.invoiceService.IssueFromOrder(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// UpdateEInvoiceStatus advances the provider lifecycle
// @Summary      Update e-invoice status
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Invoice ID"
// @Param        payload  body      service.EInvoiceStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Router       /api/invoices/{id}/e-invoice-status [patch]
func (h *InvoiceHandler) UpdateEInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.EInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	invoice, err := h.invoiceService.UpdateEInvoiceStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

// GetConnection returns the store's e-invoice provider credentials
// @Summary      Get e-invoice connection
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  true  "Store"
// @Success      200         {object}  response.Response{data=model.EInvoiceConnection}
// @Router       /api/e-invoice-connection [get]
func (h *InvoiceHandler) GetConnection(c *gin.Context) {
	conn, err := h.invoiceService.GetConnection(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, conn))
}

// SaveConnection stores provider credentials
// @Summary      Save e-invoice connection
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.EInvoiceConnection  true  "Connection"
// @Success      200      {object}  response.Response{data=model.EInvoiceConnection}
// @Router       /api/e-invoice-connection [put]
func (h *InvoiceHandler) SaveConnection(c *gin.Context) {
	var conn model.EInvoiceConnection
	if err := c.ShouldBindJSON(&conn); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.invoiceService.SaveConnection(c.Request.Context(), &conn); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, conn))
}
