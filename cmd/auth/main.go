package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shopauth/shopauth/internal/pkg/config"
	"github.com/shopauth/shopauth/internal/pkg/database"
	"github.com/shopauth/shopauth/internal/pkg/health"
	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/middleware"
	natspkg "github.com/shopauth/shopauth/internal/pkg/nats"
	"github.com/shopauth/shopauth/internal/pkg/server"
	"github.com/shopauth/shopauth/services/auth"
	"github.com/shopauth/shopauth/services/auth/gateway"
	"github.com/shopauth/shopauth/services/auth/handler"
	httpHandler "github.com/shopauth/shopauth/services/auth/handler/http"
	"github.com/shopauth/shopauth/services/auth/repository"
	"github.com/shopauth/shopauth/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	// Missing secrets must stop startup, never proceed with empty values
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize Redis client for the OTP store
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, redisClient)

	// Initialize gateways
	messagingGW := gateway.NewWhatsAppGateway(configs.WhatsApp)
	commerceGW := gateway.NewShopifyGateway(configs.Shopify)

	// NATS is optional; login events are skipped when no URL is configured
	var eventGW auth.EventGW
	var natsClient *natspkg.Client
	healthCheckers := []health.HealthChecker{health.NewRedisHealthChecker(redisClient)}
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsClient.Close()
		eventGW = gateway.NewNATSGateway(natsClient)
		healthCheckers = append(healthCheckers, health.NewNATSHealthChecker(natsClient))
	}

	// Initialize usecase
	authUC := usecase.NewAuthUC(authRepo, messagingGW, commerceGW, eventGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	h := handler.NewHandler(authHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, healthCheckers...)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
