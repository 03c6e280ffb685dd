package technology

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard *middleware.Guard,
) {
	technologies := r.Group("/technologies")
	{
		technologies.GET("", h.GetAll)
		technologies.GET("/:id", h.GetByID)
		technologies.GET("/:id/employees", h.GetEmployees)
	}

	writes := technologies.Group("", guard.Writes()...)
	{
		writes.POST("", guard.Can("technology", "create"), h.Create)
		writes.DELETE("/:id", guard.Can("technology", "delete"), h.Delete)
	}
}
