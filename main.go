package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/configs"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/middlewares"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := configs.LoadConfig()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		slog.Error("admin seed failed", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cache := middlewares.NewResponseCache(cfg.CacheTTL)
	generalLimiter := middlewares.NewRateLimiter(cfg.GeneralRateLimit, "RATE_LIMIT_GENERAL")

	r := gin.New()
	r.Use(
		middlewares.RequestID(),
		middlewares.RequestLogger(),
		gin.Recovery(),
		middlewares.CORS(cfg.CORSOrigin),
		generalLimiter.Middleware(),
	)

	routes.Register(r, db, cfg, cache)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server listening", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
