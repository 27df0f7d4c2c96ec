package handler

import (
	"net/http"
	"time"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/internal/validation"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier)
	managers := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	employees := router.Group("/api/employees")
	{
		employees.GET("", staff, h.ListEmployees)
		employees.GET("/:id", staff, h.GetEmployee)
		employees.POST("", managers, h.CreateEmployee)
		employees.PUT("/:id", managers, h.UpdateEmployee)
		employees.DELETE("/:id", managers, h.DeleteEmployee)

		employees.POST("/:id/clock-in", staff, h.ClockIn)
		employees.POST("/:id/clock-out", staff, h.ClockOut)
		employees.POST("/:id/break/start", staff, h.StartBreak)
		employees.POST("/:id/break/end", staff, h.EndBreak)
		employees.GET("/:id/attendance", managers, h.ListAttendance)
		employees.POST("/:id/attendance", managers, h.RecordAttendance)
	}
}

// ListEmployees lists staff
// @Summary      List employees
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        store_code  query     string  false  "Filter by store"
// @Param        active      query     bool    false  "Active only"
// @Success      200         {object}  response.Response{data=[]model.Employee}
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), c.Query("store_code"), activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employees))
}

// GetEmployee fetches one staff member
// @Summary      Get employee
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=model.Employee}
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// CreateEmployee registers a staff member
// @Summary      Create employee
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.EmployeeInput  true  "Employee"
// @Success      201      {object}  response.Response{data=model.Employee}
// @Failure      400      {object}  response.Response
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in validation.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// UpdateEmployee updates a staff member
// @Summary      Update employee
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Employee ID"
// @Param        payload  body      validation.EmployeeInput  true  "Employee"
// @Success      200      {object}  response.Response{data=model.Employee}
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in validation.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// DeleteEmployee soft deletes a staff member
// @Summary      Delete employee
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "employee deleted"}))
}

// ClockIn opens today's attendance record
// @Summary      Clock in
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=model.AttendanceRecord}
// @Failure      400  {object}  response.Response
// @Router       /api/employees/{id}/clock-in [post]
func (h *EmployeeHandler) ClockIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.employeeService.ClockIn(c.Request.Context(), id, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ClockOut closes today's attendance record and computes hours
// @Summary      Clock out
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=model.AttendanceRecord}
// @Failure      400  {object}  response.Response
// @Router       /api/employees/{id}/clock-out [post]
func (h *EmployeeHandler) ClockOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.employeeService.ClockOut(c.Request.Context(), id, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// StartBreak marks the start of the break window
// @Summary      Start break
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=model.AttendanceRecord}
// @Router       /api/employees/{id}/break/start [post]
func (h *EmployeeHandler) StartBreak(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.employeeService.StartBreak(c.Request.Context(), id, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// EndBreak marks the end of the break window
// @Summary      End break
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=model.AttendanceRecord}
// @Router       /api/employees/{id}/break/end [post]
func (h *EmployeeHandler) EndBreak(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.employeeService.EndBreak(c.Request.Context(), id, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ListAttendance lists attendance for a date range
// @Summary      List attendance
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id    path      int     true   "Employee ID"
// @Param        from  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        to    query     string  false  "Range end (YYYY-MM-DD)"
// @Success      200   {object}  response.Response{data=[]model.AttendanceRecord}
// @Router       /api/employees/{id}/attendance [get]
func (h *EmployeeHandler) ListAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now
	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			to = parsed
		}
	}

	records, err := h.employeeService.ListAttendance(c.Request.Context(), id, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}

// RecordAttendance writes or corrects a full attendance day
// @Summary      Record attendance
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Employee ID"
// @Param        payload  body      validation.AttendanceInput  true  "Attendance day"
// @Success      200      {object}  response.Response{data=model.AttendanceRecord}
// @Failure      400      {object}  response.Response
// @Router       /api/employees/{id}/attendance [post]
func (h *EmployeeHandler) RecordAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in validation.AttendanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	in.EmployeeRef = id

	record, err := h.employeeService.RecordAttendance(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}
