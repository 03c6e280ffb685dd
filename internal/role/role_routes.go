package role

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard *middleware.Guard,
) {
	roles := r.Group("/roles")
	{
		roles.GET("", h.GetAll)
		roles.GET("/:id", h.GetByID)
		roles.GET("/:id/employees", h.GetEmployees)
	}

	writes := roles.Group("", guard.Writes()...)
	{
		writes.POST("", guard.Can("role", "create"), h.Create)
		writes.PUT("/:id", guard.Can("role", "update"), h.Update)
		writes.DELETE("/:id", guard.Can("role", "delete"), h.Delete)
	}
}
