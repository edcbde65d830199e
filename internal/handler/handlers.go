package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Schera-ole/hostexporter/internal/config"
	internalerrors "github.com/Schera-ole/hostexporter/internal/errors"
	middlewareinternal "github.com/Schera-ole/hostexporter/internal/middleware"
	"github.com/Schera-ole/hostexporter/internal/service"
)

const landingPage = `<html>
<head><title>Host Exporter</title></head>
<body>
<h1>Host Exporter</h1>
<p><a href="%s">Metrics</a></p>
</body>
</html>
`

func Router(
	logger *zap.SugaredLogger,
	scrapeService *service.ScrapeService,
) chi.Router {
	router := chi.NewRouter()
	router.Use(middlewareinternal.LoggingMiddleware(logger))
	router.Use(middleware.Recoverer)
	router.Use(middlewareinternal.GzipMiddleware)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(config.RequestTimeout))
	router.Get(config.MetricsPath, func(w http.ResponseWriter, r *http.Request) {
		MetricsHandler(w, r, scrapeService, logger)
	})
	router.Get("/ping", PingHandler)
	router.Get("/", LandingHandler)
	return router
}

// MetricsHandler samples the host and writes every gauge in the text
// exposition format. A sampling failure yields 500 and no metrics.
func MetricsHandler(w http.ResponseWriter, r *http.Request, scrapeService *service.ScrapeService, logger *zap.SugaredLogger) {
	body, contentType, err := scrapeService.Scrape(r.Context())
	if err != nil {
		if errors.Is(err, internalerrors.ErrSampling) {
			logger.Errorw("failed to sample host metrics", "error", err)
			http.Error(w, "failed to sample host metrics", http.StatusInternalServerError)
			return
		}
		logger.Errorw("failed to render metrics", "error", err)
		http.Error(w, "failed to render metrics", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Debugw("failed to write metrics response", "error", err)
	}
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

func LandingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, landingPage, config.MetricsPath)
}
