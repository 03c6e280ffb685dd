package employee

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard *middleware.Guard,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.GET("/options", h.GetOptions)
		employees.GET("/:id", h.GetByID)
		employees.GET("/:id/technologies", h.GetTechnologies)
		employees.GET("/:id/projects", h.GetProjects)
	}

	writes := employees.Group("", guard.Writes()...)
	{
		writes.POST("", guard.Can("employee", "create"), h.Create)
		writes.PUT("/:id", guard.Can("employee", "update"), h.Update)
		writes.DELETE("/:id", guard.Can("employee", "delete"), h.Delete)
		writes.PUT("/:id/technologies/:technology_id", guard.Can("employee", "assign"), h.AddTechnology)
		writes.DELETE("/:id/technologies/:technology_id", guard.Can("employee", "assign"), h.RemoveTechnology)
	}
}
