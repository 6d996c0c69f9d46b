package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.GET("/types", h.GetTypes)
		employees.GET("/:name", h.GetByName)
		employees.PUT("/:name", h.Upsert)
		employees.DELETE("/:name", h.Delete)
	}
}
