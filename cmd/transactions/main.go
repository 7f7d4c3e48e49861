package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/config"
	"github.com/piresc/sessionledger/internal/pkg/database"
	"github.com/piresc/sessionledger/internal/pkg/health"
	"github.com/piresc/sessionledger/internal/pkg/logger"
	"github.com/piresc/sessionledger/internal/pkg/middleware"
	"github.com/piresc/sessionledger/internal/pkg/retry"
	"github.com/piresc/sessionledger/internal/pkg/serializer"
	"github.com/piresc/sessionledger/internal/pkg/server"
	"github.com/piresc/sessionledger/internal/pkg/session"
	"github.com/piresc/sessionledger/internal/pkg/validator"
	"github.com/piresc/sessionledger/services/transactions/handler"
	httpHandler "github.com/piresc/sessionledger/services/transactions/handler/http"
	"github.com/piresc/sessionledger/services/transactions/repository"
	"github.com/piresc/sessionledger/services/transactions/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/transactions.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.WithFields(logger.Fields{
		"app":         configs.App.Name,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection, retrying while the database starts up
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = configs.Database.ConnectRetries
	var postgresClient *database.PostgresClient
	err = retry.New(retryConfig, appLogger).Execute(context.Background(), "postgres connect", func(ctx context.Context) error {
		client, connectErr := database.NewPostgresClient(configs.Database)
		if connectErr != nil {
			return connectErr
		}
		postgresClient = client
		return nil
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(configs, postgresClient.GetDB())

	// Initialize UseCase
	transactionUC := usecase.NewTransactionUC(configs, transactionRepo)

	// Handlers for HTTP
	sessions := session.NewResolverFromConfig(configs.Session)
	transactionHandler := httpHandler.NewTransactionHandler(transactionUC, sessions)
	Handler := handler.NewHandler(transactionHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.JSONSerializer = serializer.StrictJSON{}
	e.HTTPErrorHandler = middleware.JSONErrorHandler(appLogger)

	// Add middlewares
	e.Use(middleware.PanicRecoveryWithLogger(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger, sessions.CookieName))

	// Register health endpoints
	healthService := health.NewService(appLogger)
	healthService.AddChecker("postgres", postgresClient)
	health.RegisterEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	// Register service routes
	Handler.RegisterRoutes(e, configs.Routes.Prefix)

	gracefulServer := server.NewGracefulServer(e, appLogger, configs.Server)
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	appLogger.WithFields(logger.Fields{
		"port":   configs.Server.Port,
		"prefix": configs.Routes.Prefix,
	}).Info("Starting server")

	if err := gracefulServer.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}
