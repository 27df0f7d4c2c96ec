package handler

import (
	"net/http"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/internal/validation"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableService service.TableService
}

func NewTableHandler(tableService service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

func (h *TableHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	tables := router.Group("/api/tables")
	{
		tables.GET("", staff, h.ListTables)
		tables.GET("/:id", staff, h.GetTable)
		tables.POST("", managers, h.CreateTable)
		tables.PUT("/:id", managers, h.UpdateTable)
		tables.DELETE("/:id", managers, h.DeleteTable)
		tables.PATCH("/:id/status", staff, h.SetStatus)
	}
}

// ListTables lists the floor plan
// @Summary      List tables
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Filter by store"
// @Param        status      query     string  false  "Filter by status"
// @Success      200         {object}  response.Response{data=[]model.DiningTable}
// @Router       /api/tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context(), c.Query("store_code"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tables))
}

// GetTable fetches one table
// @Summary      Get table
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Table ID"
// @Success      200  {object}  response.Response{data=model.DiningTable}
// @Router       /api/tables/{id} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	table, err := h.tableService.GetTable(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, table))
}

// CreateTable adds a table to the floor plan
// @Summary      Create table
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.TableInput  true  "Table"
// @Success      201      {object}  response.Response{data=model.DiningTable}
// @Failure      400      {object}  response.Response
// @Router       /api/tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var in validation.TableInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	table, err := h.tableService.CreateTable(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, table))
}

// UpdateTable updates table metadata
// @Summary      Update table
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Table ID"
// @Param        payload  body      validation.TableInput  true  "Table"
// @Success      200      {object}  response.Response{data=model.DiningTable}
// @Router       /api/tables/{id} [put]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in validation.TableInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	table, err := h.tableService.UpdateTable(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, table))
}

// DeleteTable removes a table that is not occupied
// @Summary      Delete table
// @Tags         tables
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Table ID"
// @Success      200  {object}  response.Response
// @Router       /api/tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tableService.DeleteTable(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "table deleted"}))
}

// SetStatus changes a table's occupancy status
// @Summary      Set table status
// @Tags         tables
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int     true  "Table ID"
// @Param        payload  body      object  true  "Status"
// @Success      200      {object}  response.Response{data=model.DiningTable}
// @Failure      400      {object}  response.Response
// @Router       /api/tables/{id}/status [patch]
func (h *TableHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	table, err := h.tableService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, table))
}
