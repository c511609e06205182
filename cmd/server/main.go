package main

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/youruser/combineapp/internal/api"
	"github.com/youruser/combineapp/internal/compose"
	"github.com/youruser/combineapp/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	fetcher := compose.NewFetcher(cfg.ConnectTimeout, cfg.FetchTimeout, cfg.MaxImageEdge)
	pipeline := compose.NewPipeline(fetcher)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	api.RegisterRoutes(r, pipeline, logger)

	logger.Info("starting server", "addr", ":"+cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server exited", "err", err)
	}
}
