package main

import (
	"context"
	"os"

	"leavedesk/internal/bootstrap"
	"leavedesk/internal/employee"
	"leavedesk/internal/ledger"
	"leavedesk/internal/leave"
	"leavedesk/internal/seed"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/connection"
	"leavedesk/internal/shared/counter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

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
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := bootstrap.Migrate(gormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	employeeRepo := employee.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	employeeService := employee.NewService(gormDB, employeeRepo, ledgerRepo, counterRepo)
	leaveService := leave.NewService(gormDB, leaveRepo, employeeRepo, ledgerRepo)

	result, err := seed.Run(context.Background(), employeeService, leaveService, logger)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	logger.Info("seed finished",
		zap.Int("employees_created", result.EmployeesCreated),
		zap.Int("requests_created", result.RequestsCreated),
	)
}
