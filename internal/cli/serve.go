package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/foodgram/internal/cache"
	"github.com/BruksfildServices01/foodgram/internal/config"
	"github.com/BruksfildServices01/foodgram/internal/logger"
	"github.com/BruksfildServices01/foodgram/internal/routes"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	images, err := newImageStore(cfg)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		DB:     conn,
		Config: cfg,
		Cache:  store,
		Images: images,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newCache(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, using in-process cache")
		return cache.NewMemoryStore(), func() {}, nil
	}

	rs, err := cache.NewRedisStore(ctx, cfg.RedisURL, "foodgram:")
	if err != nil {
		return nil, nil, err
	}
	return rs, func() {
		if err := rs.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}, nil
}

func newImageStore(cfg *config.Config) (storage.ImageStore, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}), nil
	}
	return storage.NewLocalStore(cfg.MediaDir, cfg.MediaURL)
}
