package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/config/logger"
)

const _shutdownPeriod = 10 * time.Second

func main() {
	rootCtx, rootCtxCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCtxCancel()

	cfg := config.GetSchedulerConfig()
	baseLogger, err := logger.Build(cfg.Logger)
	if err != nil {
		log.Fatalln(err)
	}
	defer baseLogger.Sync()
	logger.WatchLevel()

	app := api.NewApp(cfg, baseLogger.Named("api"))

	go func() {
		<-rootCtx.Done()
		zap.L().Info("Shutting down server")
		if err := app.ShutdownWithTimeout(_shutdownPeriod); err != nil {
			zap.L().Error("Server shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("Starting the application",
		zap.String("app", cfg.AppName),
		zap.Int("port", cfg.Port),
		zap.String("default_algorithm", cfg.DefaultAlgorithm))

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zap.L().Fatal("Server stopped", zap.Error(err))
	}
}
