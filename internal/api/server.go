package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/animalia/listing-system/internal/infrastructure/config"
	mongodb "github.com/animalia/listing-system/internal/infrastructure/db/mongo"
	redisdb "github.com/animalia/listing-system/internal/infrastructure/db/redis"
	"github.com/animalia/listing-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Serve loads configuration, connects the backing stores and runs the
// HTTP server until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		_ = rdb.Close()
	}()

	e, dispatcher := NewRouter(db, rdb, cfg.JWTSecret, cfg.IndexWorkers, log)

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()
	dispatcher.Start(dispatchCtx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf(":%s", cfg.Port))
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listing server started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
