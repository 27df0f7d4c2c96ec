package handler

import (
	"net/http"
	"time"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/pkg/pagination"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	transactions := router.Group("/api/transactions")
	{
		transactions.GET("", staff, h.ListTransactions)
		transactions.GET("/:id", staff, h.GetTransaction)
		transactions.GET("/daily-summary", managers, h.DailySummary)
	}
}

// ListTransactions lists completed sales
// @Summary      List transactions
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        page            query     int     false  "Page number"
// @Param        limit           query     int     false  "Items per page"
// @Param        store_code      query     string  false  "Filter by store"
// @Param        payment_method  query     string  false  "Filter by tender"
// @Param        from            query     string  false  "Range start (YYYY-MM-DD)"
// @Param        to              query     string  false  "Range end, exclusive (YYYY-MM-DD)"
// @Success      200             {object}  response.Response{data=object}
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	params := pagination.Parse(c)
	filter := service.TransactionFilter{
		StoreCode:     c.Query("store_code"),
		PaymentMethod: c.Query("payment_method"),
		Page:          params.Page,
		Limit:         params.Limit,
	}
	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filter.From = &parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filter.To = &parsed
		}
	}

	txs, total, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"total":        total,
		"page":         params.Page,
		"limit":        params.Limit,
	}))
}

// GetTransaction fetches one completed sale
// @Summary      Get transaction
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  response.Response{data=model.Transaction}
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tx))
}

// DailySummary aggregates one day's sales
// @Summary      Daily sales summary
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Store"
// @Param        date        query     string  false  "Day (YYYY-MM-DD, default today)"
// @Success      200         {object}  response.Response{data=service.DailySummary}
// @Router       /api/transactions/daily-summary [get]
func (h *TransactionHandler) DailySummary(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	summary, err := h.transactionService.DailySummary(c.Request.Context(), c.Query("store_code"), day)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
