package holiday

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("", h.GetAll)
		holidays.GET("/month-stats", h.GetMonthStats)
		holidays.POST("", h.Create)
		holidays.PUT("/:id", h.Update)
		holidays.DELETE("/:id", h.Delete)
	}
}
