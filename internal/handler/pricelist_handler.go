package handler

import (
	"net/http"
	"strconv"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/internal/validation"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PriceListHandler struct {
	priceListService service.PriceListService
}

func NewPriceListHandler(priceListService service.PriceListService) *PriceListHandler {
	return &PriceListHandler{priceListService: priceListService}
}

func (h *PriceListHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	lists := router.Group("/api/price-lists")
	{
		lists.GET("", staff, h.ListPriceLists)
		lists.GET("/:id", staff, h.GetPriceList)
		lists.POST("", managers, h.CreatePriceList)
		lists.PUT("/:id", managers, h.UpdatePriceList)
		lists.DELETE("/:id", managers, h.DeletePriceList)
		lists.PUT("/:id/items", managers, h.SetOverride)
		lists.DELETE("/:id/items/:productId", managers, h.RemoveOverride)
	}
}

// ListPriceLists lists price lists for a store
// @Summary      List price lists
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Filter by store"
// @Success      200         {object}  response.Response{data=[]model.PriceList}
// @Router       /api/price-lists [get]
func (h *PriceListHandler) ListPriceLists(c *gin.Context) {
	lists, err := h.priceListService.ListPriceLists(c.Request.Context(), c.Query("store_code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, lists))
}

// GetPriceList fetches one list with its overrides
// @Summary      Get price list
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Price list ID"
// @Success      200  {object}  response.Response{data=model.PriceList}
// @Router       /api/price-lists/{id} [get]
func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.priceListService.GetPriceList(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// CreatePriceList creates a price list
// @Summary      Create price list
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.PriceListInput  true  "Price list"
// @Success      201      {object}  response.Response{data=model.PriceList}
// @Failure      400      {object}  response.Response
// @Router       /api/price-lists [post]
func (h *PriceListHandler) CreatePriceList(c *gin.Context) {
	var in validation.PriceListInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	list, err := h.priceListService.CreatePriceList(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, list))
}

// UpdatePriceList updates list metadata and validity bounds
// @Summary      Update price list
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Price list ID"
// @Param        payload  body      validation.PriceListInput  true  "Price list"
// @Success      200      {object}  response.Response{data=model.PriceList}
// @Router       /api/price-lists/{id} [put]
func (h *PriceListHandler) UpdatePriceList(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in validation.PriceListInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	list, err := h.priceListService.UpdatePriceList(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// DeletePriceList removes a non-default list
// @Summary      Delete price list
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Price list ID"
// @Success      200  {object}  response.Response
// @Router       /api/price-lists/{id} [delete]
func (h *PriceListHandler) DeletePriceList(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.priceListService.DeletePriceList(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "price list deleted"}))
}

// SetOverride sets or replaces one product override
// @Summary      Set price override
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Price list ID"
// @Param        payload  body      service.PriceOverrideRequest  true  "Override"
// @Success      200      {object}  response.Response{data=model.PriceListItem}
// @Failure      400      {object}  response.Response
// @Router       /api/price-lists/{id}/items [put]
func (h *PriceListHandler) SetOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.PriceOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	item, err := h.priceListService.SetOverride(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// RemoveOverride deletes one product override
// @Summary      Remove price override
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        id         path      int  true  "Price list ID"
// @Param        productId  path      int  true  "Product ID"
// @Success      200        {object}  response.Response
// @Router       /api/price-lists/{id}/items/{productId} [delete]
func (h *PriceListHandler) RemoveOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid product ID"))
		return
	}
	if err := h.priceListService.RemoveOverride(c.Request.Context(), id, uint(productID)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "override removed"}))
}
