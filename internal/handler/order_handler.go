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

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)

	orders := router.Group("/api/orders")
	{
		orders.GET("", staff, h.ListOrders)
		orders.GET("/:id", staff, h.GetOrder)
		orders.GET("/:id/history", staff, h.GetHistory)
		orders.POST("", staff, h.CreateOrder)
		orders.PATCH("/:id/status", staff, h.UpdateStatus)
		orders.POST("/:id/checkout", staff, h.Checkout)
	}
}

// ListOrders lists orders with filters
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        page            query     int     false  "Page number"
// @Param        limit           query     int     false  "Items per page"
// @Param        store_code      query     string  false  "Filter by store"
// @Param        status          query     string  false  "Filter by status"
// @Param        payment_status  query     string  false  "Filter by payment status"
// @Param        sales_channel   query     string  false  "Filter by channel"
// @Param        table_id        query     int     false  "Filter by table"
// @Success      200             {object}  response.Response{data=object}
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := pagination.Parse(c)
	filter := service.OrderFilter{
		StoreCode:     c.Query("store_code"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		SalesChannel:  c.Query("sales_channel"),
		Page:          params.Page,
		Limit:         params.Limit,
	}
	if raw := c.Query("table_id"); raw != "" {
		if tableID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(tableID)
			filter.TableID = &id
		}
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
		"page":   params.Page,
		"limit":  params.Limit,
	}))
}

// GetOrder fetches one order with its items
// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response{data=model.Order}
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// GetHistory lists the audit trail of an order
// @Summary      Order history
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response{data=[]model.OrderChangeHistory}
// @Router       /api/orders/{id}/history [get]
func (h *OrderHandler) GetHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	history, err := h.orderService.GetHistory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, history))
}

// CreateOrder opens an order
// @Summary      Create order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.OrderInput  true  "Order"
// @Success      201      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var in validation.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), in, actor(c), c.ClientIP())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// UpdateStatus moves an order along its lifecycle
// @Summary      Update order status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                               true  "Order ID"
// @Param        payload  body      service.UpdateOrderStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if req.Actor == "" {
		req.Actor = actor(c)
	}
	req.IPAddress = c.ClientIP()

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// Checkout settles an order into a transaction
// @Summary      Checkout
// @Description  Settles the order: writes the transaction, deducts stock, releases the table, accrues points
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "Order ID"
// @Param        payload  body      service.CheckoutRequest  true  "Payment"
// @Success      200      {object}  response.Response{data=model.Transaction}
// @Failure      400      {object}  response.Response
// @Router       /api/orders/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if req.Actor == "" {
		req.Actor = actor(c)
	}
	req.IPAddress = c.ClientIP()

	tx, err := h.orderService.Checkout(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tx))
}
