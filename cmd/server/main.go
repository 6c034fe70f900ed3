// cmd/server/main.go
package main

import (
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hearsay-games/hearsay/internal/assets"
	"github.com/hearsay-games/hearsay/internal/cache"
	"github.com/hearsay-games/hearsay/internal/catalog"
	"github.com/hearsay-games/hearsay/internal/config"
	"github.com/hearsay-games/hearsay/internal/handlers"
	"github.com/hearsay-games/hearsay/internal/identity"
	"github.com/hearsay-games/hearsay/internal/middleware"
)

func main() {
	cfg := &config.Config{}
	cobra.CheckErr(config.NewCmd(cfg, run).Execute())
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := logrus.New()
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Score persistence: redis when configured, otherwise in-memory.
	var scores cache.ScoreStore
	if cfg.RedisAddr != "" {
		store, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisDB, logger)
		if err != nil {
			return err
		}
		scores = store
		logger.Infof("scores persisted to redis at %s", cfg.RedisAddr)
	} else {
		scores = cache.NewMemoryScoreStore()
		logger.Warn("no redis configured, scores are lost on restart")
	}

	resolver, err := assets.NewResolver(cfg.AssetBase)
	if err != nil {
		return err
	}

	vs := handlers.NewViewServer(logger, scores, identity.Static(""), catalog.New(), resolver)
	vs.IdentityTTL = cfg.IdentityTTL

	if cfg.KeyPath != "" {
		authority, err := identity.NewTokenAuthorityFromPath(cfg.KeyPath, cfg.PubKeyPath, 24*time.Hour)
		if err != nil {
			return err
		}
		vs.Auth = authority
		logger.Info("session token authority loaded")
	}

	mux := http.NewServeMux()
	handlers.Routes(mux, logger, vs, cfg.ShareURL)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      middleware.LogMiddleware(logger)(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websocket connections stay open
	}

	logger.Infof("hearsay listening on %s", cfg.Addr())
	return server.ListenAndServe()
}
