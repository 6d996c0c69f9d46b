package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	deductions := r.Group("/deductions")
	{
		deductions.GET("", h.GetByPeriod)
		deductions.GET("/:name", h.GetForEmployee)
		deductions.POST("", idempotency, h.Upsert)
		deductions.POST("/loan-schedule", idempotency, h.ApplyLoanSchedule)
	}
}
