package app

import (
	"leavedesk/internal/employee"
	"leavedesk/internal/ledger"
	"leavedesk/internal/leave"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/middleware"
	"leavedesk/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	ledgerService := ledger.NewService(gormDB, ledgerRepo, employeeRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, ledgerRepo, counterRepo, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(gormDB, leaveRepo, employeeRepo, ledgerRepo, outboxRepo, ledgerService)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(50, 100))
	{
		employee.RegisterRoutes(api, employeeHandler)
		ledger.RegisterRoutes(api, ledgerHandler)
		leave.RegisterRoutes(api, leaveHandler)
	}

	return nil
}
