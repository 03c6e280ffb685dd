package customer

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard *middleware.Guard,
) {
	customers := r.Group("/customers")
	{
		customers.GET("", h.GetAll)
		customers.GET("/:id", h.GetByID)
	}

	writes := customers.Group("", guard.Writes()...)
	{
		writes.POST("", guard.Can("customer", "create"), h.Create)
		writes.PUT("/:id", guard.Can("customer", "update"), h.Update)
		writes.DELETE("/:id", guard.Can("customer", "delete"), h.Delete)
	}
}
