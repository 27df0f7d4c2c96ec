package handler

import (
	"net/http"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	settings := router.Group("/api/settings")
	{
		settings.GET("/store", staff, h.GetStoreSettings)
		settings.PUT("/store", managers, h.SaveStoreSettings)

		settings.GET("/printers", staff, h.ListPrinters)
		settings.PUT("/printers", managers, h.SavePrinter)
		settings.DELETE("/printers/:id", managers, h.DeletePrinter)

		settings.GET("/payment-methods", staff, h.ListPaymentMethods)
		settings.PUT("/payment-methods", managers, h.SavePaymentMethod)
		settings.DELETE("/payment-methods/:id", managers, h.DeletePaymentMethod)

		settings.GET("/invoice-templates", staff, h.ListTemplates)
		settings.PUT("/invoice-templates", managers, h.SaveTemplate)

		settings.GET("/general", managers, h.ListGeneralSettings)
		settings.PUT("/general", managers, h.SetGeneralSetting)
	}
}

// GetStoreSettings returns the store profile
// @Summary      Get store settings
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  true  "Store"
// @Success      200         {object}  response.Response{data=model.StoreSettings}
// @Router       /api/settings/store [get]
func (h *SettingsHandler) GetStoreSettings(c *gin.Context) {
	settings, err := h.settingsService.GetStoreSettings(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// SaveStoreSettings upserts the store profile
// @Summary      Save store settings
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.StoreSettings  true  "Store profile"
// @Success      200      {object}  response.Response{data=model.StoreSettings}
// @Router       /api/settings/store [put]
func (h *SettingsHandler) SaveStoreSettings(c *gin.Context) {
	var settings model.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	saved, err := h.settingsService.SaveStoreSettings(c.Request.Context(), &settings)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// ListPrinters lists configured printers
// @Summary      List printers
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Store"
// @Success      200         {object}  response.Response{data=[]model.PrinterConfig}
// @Router       /api/settings/printers [get]
func (h *SettingsHandler) ListPrinters(c *gin.Context) {
	printers, err := h.settingsService.ListPrinters(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, printers))
}

// SavePrinter upserts a printer config
// @Summary      Save printer
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.PrinterConfig  true  "Printer"
// @Success      200      {object}  response.Response{data=model.PrinterConfig}
// @Router       /api/settings/printers [put]
func (h *SettingsHandler) SavePrinter(c *gin.Context) {
	var printer model.PrinterConfig
	if err := c.ShouldBindJSON(&printer); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	saved, err := h.settingsService.SavePrinter(c.Request.Context(), &printer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeletePrinter removes a printer config
// @Summary      Delete printer
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Printer ID"
// @Success      200  {object}  response.Response
// @Router       /api/settings/printers/{id} [delete]
func (h *SettingsHandler) DeletePrinter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.settingsService.DeletePrinter(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "printer deleted"}))
}

// ListPaymentMethods lists tender types
// @Summary      List payment methods
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Store"
// @Success      200         {object}  response.Response{data=[]model.PaymentMethod}
// @Router       /api/settings/payment-methods [get]
func (h *SettingsHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.settingsService.ListPaymentMethods(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, methods))
}

// SavePaymentMethod upserts a tender type
// @Summary      Save payment method
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.PaymentMethod  true  "Payment method"
// @Success      200      {object}  response.Response{data=model.PaymentMethod}
// @Router       /api/settings/payment-methods [put]
func (h *SettingsHandler) SavePaymentMethod(c *gin.Context) {
	var method model.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	saved, err := h.settingsService.SavePaymentMethod(c.Request.Context(), &method)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeletePaymentMethod removes a tender type
// @Summary      Delete payment method
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Payment method ID"
// @Success      200  {object}  response.Response
// @Router       /api/settings/payment-methods/{id} [delete]
func (h *SettingsHandler) DeletePaymentMethod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.settingsService.DeletePaymentMethod(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "payment method deleted"}))
}

// ListTemplates lists invoice layouts
// @Summary      List invoice templates
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Store"
// @Success      200         {object}  response.Response{data=[]model.InvoiceTemplate}
// @Router       /api/settings/invoice-templates [get]
func (h *SettingsHandler) ListTemplates(c *gin.Context) {
	templates, err := h.settingsService.ListTemplates(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, templates))
}

// SaveTemplate upserts an invoice layout
// @Summary      Save invoice template
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      model.InvoiceTemplate  true  "Template"
// @Success      200      {object}  response.Response{data=model.InvoiceTemplate}
// @Router       /api/settings/invoice-templates [put]
func (h *SettingsHandler) SaveTemplate(c *gin.Context) {
	var template model.InvoiceTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	saved, err := h.settingsService.SaveTemplate(c.Request.Context(), &template)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// ListGeneralSettings returns the free-form key/value settings
// @Summary      List general settings
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  true  "Store"
// @Success      200         {object}  response.Response{data=object}
// @Router       /api/settings/general [get]
func (h *SettingsHandler) ListGeneralSettings(c *gin.Context) {
	settings, err := h.settingsService.ListSettings(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// SetGeneralSetting upserts one key/value setting
// @Summary      Set general setting
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Setting"
// @Success      200      {object}  response.Response
// @Router       /api/settings/general [put]
func (h *SettingsHandler) SetGeneralSetting(c *gin.Context) {
	var req struct {
		StoreCode string `json:"store_code"`
		Key       string `json:"key" binding:"required"`
		Value     string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.settingsService.SetSetting(c.Request.Context(), req.StoreCode, req.Key, req.Value); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{req.Key: req.Value}))
}
