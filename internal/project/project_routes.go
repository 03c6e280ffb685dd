package project

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard *middleware.Guard,
) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.GetAll)
		projects.GET("/:id", h.GetByID)
		projects.GET("/:id/employees", h.GetEmployees)
	}

	writes := projects.Group("", guard.Writes()...)
	{
		writes.POST("", guard.Can("project", "create"), h.Create)
		writes.PUT("/:id", guard.Can("project", "update"), h.Update)
		writes.DELETE("/:id", guard.Can("project", "delete"), h.Delete)
		writes.PUT("/:id/employees/:employee_id", guard.Can("project", "assign"), h.AddEmployee)
		writes.DELETE("/:id/employees/:employee_id", guard.Can("project", "assign"), h.RemoveEmployee)
	}
}
