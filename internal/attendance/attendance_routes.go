package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	{
		attendances.POST("/import", idempotency, h.Import)
		attendances.GET("/employees", h.ListEmployees)
		attendances.GET("/:name/statement", h.GetStatement)
		attendances.GET("/:name/statement/export", h.ExportStatement)
	}
}
