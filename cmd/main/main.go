package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"defect-assistant/internal/config"
	"defect-assistant/internal/similar/service"
	serverhttp "defect-assistant/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg, os.Stdout)

	corpus, err := service.LoadCorpusFile(cfg.CorpusPath, cfg.LoadOptions())
	if err != nil {
		logger.Fatal().Err(err).Str("corpus", cfg.CorpusPath).Msg("cannot load corpus")
	}
	engine := service.NewEngine(corpus, cfg.ModelOptions(), logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           serverhttp.NewRouter(cfg, engine, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
