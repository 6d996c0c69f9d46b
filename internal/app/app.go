package app

import (
	"os"

	"go-payroll/internal/attendance"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&holiday.Holiday{},
		&employee.PayProfile{},
		&deduction.DeductionEntry{},
		&attendance.AttendanceRecord{},
		&counter.SequenceCounter{},
	); err != nil {
		return err
	}
	zap.L().Info("database schema migrated")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB, redisClient)
}
