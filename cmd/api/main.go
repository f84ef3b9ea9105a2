package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/eventlog"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form backend for a personal portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)

	events := eventlog.New(cfg.ServiceName, cfg.Environment)
	defer events.Sync()

	// 3. Setup Mail Dispatch
	composer := email.NewComposer(cfg.ContactOwnerName, cfg.ContactEmailFrom, cfg.ContactEmailTo)
	dispatcher := email.NewSimulatedDispatcher(composer, cfg.ContactDispatchDelay)
	dispatcher.Sent = func(e email.Envelope) {
		logger.Log.Debug("Contact envelope composed", "to", e.To, "reply_to", e.ReplyTo, "subject", e.Subject)
	}
	logger.Log.Warn("Contact messages are not delivered by email; using simulated dispatcher", "delay", cfg.ContactDispatchDelay)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(validation.New(), dispatcher, events, cfg.ContactDispatchTimeout)
	healthUC := usecase.NewHealthUsecase(dispatcher)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
