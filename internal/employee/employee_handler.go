package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	if apperror.IsBodyless(httpErr.Status) {
		return
	}
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll filters by surname and hiring date range, then sorts and pages in memory.
// Without page or page_size the whole result is returned.
func (h *Handler) GetAll(c *gin.Context) {
	filter := EmployeeFilter{
		Surname:   strings.TrimSpace(c.Query("surname")),
		StartDate: queryWithAlias(c, "start_date", "start date"),
		EndDate:   queryWithAlias(c, "end_date", "end date"),
	}
	h.logger.Debug("http get all employees",
		zap.String("surname", filter.Surname),
		zap.String("start_date", filter.StartDate),
		zap.String("end_date", filter.EndDate),
	)

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "surname")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	lessOf := func(a, b EmployeeResponse) bool {
		switch sortBy {
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "hiring_date":
			return a.HiringDate < b.HiringDate
		case "salary":
			return a.Salary < b.Salary
		default:
			return strings.ToLower(a.Surname) < strings.ToLower(b.Surname)
		}
	}
	sort.SliceStable(resp, func(i, j int) bool {
		if sortDir == "desc" {
			return lessOf(resp[j], resp[i])
		}
		return lessOf(resp[i], resp[j])
	})

	_, hasPage := c.GetQuery("page")
	_, hasSize := c.GetQuery("page_size")
	if !hasPage && !hasSize {
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTechnologies(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetTechnologies(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetProjects(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetProjects(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AddTechnology(c *gin.Context) {
	employeeID := c.Param("id")
	technologyID := c.Param("technology_id")
	h.logger.Debug("http add employee technology",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)

	if err := h.service.AddTechnology(c.Request.Context(), employeeID, technologyID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AssignmentResponse{
		EmployeeID:   employeeID,
		TechnologyID: technologyID,
		Assigned:     true,
	}, nil)
}

func (h *Handler) RemoveTechnology(c *gin.Context) {
	employeeID := c.Param("id")
	technologyID := c.Param("technology_id")
	h.logger.Debug("http remove employee technology",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)

	if err := h.service.RemoveTechnology(c.Request.Context(), employeeID, technologyID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AssignmentResponse{
		EmployeeID:   employeeID,
		TechnologyID: technologyID,
		Assigned:     false,
	}, nil)
}

// queryWithAlias reads key, falling back to the spaced alias older clients send.
func queryWithAlias(c *gin.Context, key, alias string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query(alias))
}
