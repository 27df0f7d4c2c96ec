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

type PurchasingHandler struct {
	purchasingService service.PurchasingService
}

func NewPurchasingHandler(purchasingService service.PurchasingService) *PurchasingHandler {
	return &PurchasingHandler{purchasingService: purchasingService}
}

func (h *PurchasingHandler) RegisterRoutes(router *gin.RouterGroup) {
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	suppliers := router.Group("/api/suppliers")
	{
		suppliers.GET("", managers, h.ListSuppliers)
		suppliers.GET("/:id", managers, h.GetSupplier)
		suppliers.POST("", managers, h.CreateSupplier)
		suppliers.PUT("/:id", managers, h.UpdateSupplier)
		suppliers.DELETE("/:id", managers, h.DeleteSupplier)
	}

	receipts := router.Group("/api/purchase-receipts")
	{
		receipts.GET("", managers, h.ListReceipts)
		receipts.GET("/:id", managers, h.GetReceipt)
		receipts.POST("", managers, h.CreateReceipt)
		receipts.POST("/:id/receive", managers, h.ReceiveGoods)
		receipts.POST("/:id/pay", managers, h.MarkPaid)
		receipts.POST("/:id/documents", managers, h.AttachDocument)
	}
}

// ListSuppliers lists goods vendors
// @Summary      List suppliers
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Filter by store"
// @Param        status      query     string  false  "Filter by status"
// @Success      200         {object}  response.Response{data=[]model.Supplier}
// @Router       /api/suppliers [get]
func (h *PurchasingHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.purchasingService.ListSuppliers(c.Request.Context(), c.Query("store_code"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, suppliers))
}

// GetSupplier fetches one vendor
// @Summary      Get supplier
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Supplier ID"
// @Success      200  {object}  response.Response{data=model.Supplier}
// @Router       /api/suppliers/{id} [get]
func (h *PurchasingHandler) GetSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	supplier, err := h.purchasingService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, supplier))
}

// CreateSupplier registers a vendor
// @Summary      Create supplier
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.SupplierInput  true  "Supplier"
// @Success      201      {object}  response.Response{data=model.Supplier}
// @Failure      400      {object}  response.Response
// @Router       /api/suppliers [post]
func (h *PurchasingHandler) CreateSupplier(c *gin.Context) {
	var in validation.SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	supplier, err := h.purchasingService.CreateSupplier(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, supplier))
}

// UpdateSupplier updates a vendor
// @Summary      Update supplier
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Supplier ID"
// @Param        payload  body      validation.SupplierInput  true  "Supplier"
// @Success      200      {object}  response.Response{data=model.Supplier}
// @Router       /api/suppliers/{id} [put]
func (h *PurchasingHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in validation.SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	supplier, err := h.purchasingService.UpdateSupplier(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, supplier))
}

// DeleteSupplier soft deletes a vendor
// @Summary      Delete supplier
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Supplier ID"
// @Success      200  {object}  response.Response
// @Router       /api/suppliers/{id} [delete]
func (h *PurchasingHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.purchasingService.DeleteSupplier(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "supplier deleted"}))
}

// ListReceipts lists purchase receipts
// @Summary      List purchase receipts
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        page         query     int     false  "Page number"
// @Param        limit        query     int     false  "Items per page"
// @Param        store_code   query     string  false  "Filter by store"
// @Param        supplier_id  query     int     false  "Filter by supplier"
// @Success      200          {object}  response.Response{data=object}
// @Router       /api/purchase-receipts [get]
func (h *PurchasingHandler) ListReceipts(c *gin.Context) {
	params := pagination.Parse(c)
	var supplierID *uint
	if raw := c.Query("supplier_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(parsed)
			supplierID = &id
		}
	}

	receipts, total, err := h.purchasingService.ListReceipts(
		c.Request.Context(), c.Query("store_code"), supplierID, params.Page, params.Limit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"receipts": receipts,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// GetReceipt fetches one receipt with lines and documents
// @Summary      Get purchase receipt
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Receipt ID"
// @Success      200  {object}  response.Response{data=model.PurchaseReceipt}
// @Router       /api/purchase-receipts/{id} [get]
func (h *PurchasingHandler) GetReceipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	receipt, err := h.purchasingService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, receipt))
}

// CreateReceipt opens a purchase receipt
// @Summary      Create purchase receipt
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.PurchaseReceiptInput  true  "Receipt"
// @Success      201      {object}  response.Response{data=model.PurchaseReceipt}
// @Failure      400      {object}  response.Response
// @Router       /api/purchase-receipts [post]
func (h *PurchasingHandler) CreateReceipt(c *gin.Context) {
	var in validation.PurchaseReceiptInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	receipt, err := h.purchasingService.CreateReceipt(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, receipt))
}

// ReceiveGoods books a (partial) delivery against a receipt
// @Summary      Receive goods
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Receipt ID"
// @Param        payload  body      []service.DeliveryLine  true  "Delivery lines"
// @Success      200      {object}  response.Response{data=model.PurchaseReceipt}
// @Failure      400      {object}  response.Response
// @Router       /api/purchase-receipts/{id}/receive [post]
func (h *PurchasingHandler) ReceiveGoods(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var deliveries []service.DeliveryLine
	if err := c.ShouldBindJSON(&deliveries); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	receipt, err := h.purchasingService.ReceiveGoods(c.Request.Context(), id, deliveries, nil)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, receipt))
}

// MarkPaid settles a receipt with the supplier
// @Summary      Mark receipt paid
// @Tags         purchasing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Receipt ID"
// @Success      200  {object}  response.Response{data=model.PurchaseReceipt}
// @Router       /api/purchase-receipts/{id}/pay [post]
func (h *PurchasingHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	receipt, err := h.purchasingService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, receipt))
}

// AttachDocument registers an uploaded file against a receipt
// @Summary      Attach document
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Receipt ID"
// @Param        payload  body      service.DocumentUpload  true  "File metadata"
// @Success      201      {object}  response.Response{data=model.PurchaseReceiptDocument}
// @Router       /api/purchase-receipts/{id}/documents [post]
func (h *PurchasingHandler) AttachDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upload service.DocumentUpload
	if err := c.ShouldBindJSON(&upload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	doc, err := h.purchasingService.AttachDocument(c.Request.Context(), id, upload)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, doc))
}
