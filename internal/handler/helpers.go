package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pos-backend/internal/validation"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// fail maps service errors onto the response envelope: field validation
// failures carry their details in data, missing rows map to 404.
func fail(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, response.Response{
			Status:     "error",
			StatusCode: http.StatusBadRequest,
			Error:      "Validation failed",
			Data:       verrs,
		})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
}

// actor returns the authenticated username for audit rows.
func actor(c *gin.Context) string {
	if username := c.GetString("username"); username != "" {
		return username
	}
	return "system"
}
