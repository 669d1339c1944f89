package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/faizandev1/image-resizer-compressor-pro/internal/config"
	"github.com/faizandev1/image-resizer-compressor-pro/internal/middleware"
	"github.com/faizandev1/image-resizer-compressor-pro/internal/rest"
	"github.com/faizandev1/image-resizer-compressor-pro/processing/application"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	processor := application.NewProcessor()
	batch := application.NewBatchProcessor(processor)

	gin.SetMode(gin.ReleaseMode)
	service := gin.New()
	service.Use(middleware.LoggingMiddleware())
	service.Use(gin.CustomRecovery(middleware.HandlePanics()))
	service.MaxMultipartMemory = cfg.MaxUploadMB << 20

	service.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Disposition",
			"X-Original-Bytes",
			"X-Processed-Bytes",
			"X-Output-Width",
			"X-Output-Height",
		},
	}))

	rest.NewApi(service, processor, batch)

	// Mounted after the API routes so existing files can never shadow /api.
	service.Use(static.Serve("/", static.LocalFile(cfg.StaticDir, true)))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: service,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
