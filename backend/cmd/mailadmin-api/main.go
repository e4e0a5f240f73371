package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/itchan-dev/mailadmin/backend/internal/router"
	"github.com/itchan-dev/mailadmin/backend/internal/setup"
	"github.com/itchan-dev/mailadmin/shared/config"
	"github.com/itchan-dev/mailadmin/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	deps, err := setup.SetupDependencies(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Public.Port),
		Handler:           router.New(deps.Handler, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "port", cfg.Public.Port, "origins", cfg.Origins())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	logger.Log.Info("server stopped")
}
