package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Schera-ole/hostexporter/internal/config"
	"github.com/Schera-ole/hostexporter/internal/handler"
	"github.com/Schera-ole/hostexporter/internal/logger"
	models "github.com/Schera-ole/hostexporter/internal/model"
	"github.com/Schera-ole/hostexporter/internal/repository"
	"github.com/Schera-ole/hostexporter/internal/sampler"
	"github.com/Schera-ole/hostexporter/internal/service"
)

func main() {
	serverConfig, err := config.NewServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal("Failed to parse configuration: ", err)
	}

	logSugar, err := logger.New(serverConfig.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logSugar.Sync()

	registry, err := repository.NewGaugeRegistry(models.HostGauges)
	if err != nil {
		logSugar.Fatalw("failed to register gauges", "error", err)
	}
	scrapeService := service.NewScrapeService(registry, sampler.NewHostProvider())

	server := &http.Server{
		Addr:              serverConfig.Address,
		Handler:           handler.Router(logSugar, scrapeService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logSugar.Infow("starting exporter",
			"address", serverConfig.Address,
			"metrics_path", config.MetricsPath,
			"gauges", registry.Names(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logSugar.Fatalw("server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logSugar.Infow("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logSugar.Errorw("graceful shutdown failed", "error", err)
	}
}
