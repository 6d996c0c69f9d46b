package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	holidayRepo := holiday.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	// --- Services ---
	holidayService := holiday.NewService(db, holidayRepo)
	employeeService := employee.NewService(db, employeeRepo)
	deductionService := deduction.NewService(db, deductionRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, holidayService)
	payrollService := payroll.NewService(employeeService, attendanceService, holidayService, deductionService, counterRepo)

	// --- Handlers ---
	holidayHandler := holiday.NewHandler(holidayService)
	employeeHandler := employee.NewHandler(employeeService)
	deductionHandler := deduction.NewHandler(deductionService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID())
	idempotency := middleware.Idempotency(rdb)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(50, 100))
	{
		holiday.RegisterRoutes(api, holidayHandler)
		employee.RegisterRoutes(api, employeeHandler)
		deduction.RegisterRoutes(api, deductionHandler, idempotency)
		attendance.RegisterRoutes(api, attendanceHandler, idempotency)
		payroll.RegisterRoutes(api, payrollHandler)
	}

	return nil
}
