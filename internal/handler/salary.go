package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/OblivionLi/salaries-management-system/internal/service"
	"github.com/OblivionLi/salaries-management-system/internal/util"

	"github.com/gin-gonic/gin"
)

// SalaryHandler owns the salary CRUD endpoints. It is the validation
// boundary: the service below never sees an empty employee, a non-positive
// amount or a missing date.
type SalaryHandler struct {
	Service *service.SalaryService
}

func NewSalaryHandler(svc *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{Service: svc}
}

type salaryRequest struct {
	Employee   string     `json:"employee" binding:"required"`
	Salary     float64    `json:"salary" binding:"required,gt=0"`
	SalaryDate *time.Time `json:"salaryDate" binding:"required"`
}

// bindSalaryRequest binds and validates the request body, writing the 400
// response itself on failure.
func (h *SalaryHandler) bindSalaryRequest(c *gin.Context) (*salaryRequest, bool) {
	var req salaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return nil, false
	}
	if err := util.ValidateEmployee(req.Employee); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, false
	}
	if err := util.ValidateAmount(req.Salary); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, false
	}
	if err := util.ValidateDate(req.SalaryDate); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, false
	}
	return &req, true
}

func salaryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid salary id")
		return 0, false
	}
	return id, true
}

// GetSalaries handles GET /api/v1/salaries/.
func (h *SalaryHandler) GetSalaries(c *gin.Context) {
	env, status, err := h.Service.List(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error retrieving salaries")
		return
	}
	c.JSON(status, env)
}

// AddSalary handles POST /api/v1/salaries/add.
func (h *SalaryHandler) AddSalary(c *gin.Context) {
	req, ok := h.bindSalaryRequest(c)
	if !ok {
		return
	}
	view, status := h.Service.Add(c.Request.Context(), service.SalaryInput{
		Salary:     req.Salary,
		Employee:   req.Employee,
		SalaryDate: req.SalaryDate,
	})
	c.JSON(status, view)
}

// EditSalary handles PATCH /api/v1/salaries/edit/:id.
func (h *SalaryHandler) EditSalary(c *gin.Context) {
	id, ok := salaryID(c)
	if !ok {
		return
	}
	req, ok := h.bindSalaryRequest(c)
	if !ok {
		return
	}
	view, status := h.Service.Edit(c.Request.Context(), id, service.SalaryInput{
		Salary:     req.Salary,
		Employee:   req.Employee,
		SalaryDate: req.SalaryDate,
	})
	c.JSON(status, view)
}

// DeleteSalary handles DELETE /api/v1/salaries/delete/:id.
func (h *SalaryHandler) DeleteSalary(c *gin.Context) {
	id, ok := salaryID(c)
	if !ok {
		return
	}
	env, status := h.Service.Delete(c.Request.Context(), id)
	c.JSON(status, env)
}
