package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", h.GetBulk)
		payrolls.GET("/summary", h.GetSummary)
		payrolls.GET("/:name", h.GetForEmployee)
		payrolls.GET("/:name/payslip", h.GetPayslip)
	}
}
