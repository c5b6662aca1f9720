package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/docextract/internal/config"
	"github.com/markdave123-py/docextract/internal/core"
	"github.com/markdave123-py/docextract/internal/core/extraction_engine"
)

type App struct {
	Logger    *zap.Logger
	Extractor core.DocumentExtractor
	Server    *Server

	shutdownTimeout time.Duration
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil || logger == nil {
		return nil, fmt.Errorf("app: config and logger are required")
	}

	dispatcher := extraction_engine.NewDefaultDispatcher(logger, cfg.MinTextLength)
	logger.Info("Extraction dispatcher ready",
		zap.Int("min_text_length", cfg.MinTextLength),
		zap.Strings("pdf_strategies", []string{
			extraction_engine.MethodMuPDF,
			extraction_engine.MethodLayout,
			extraction_engine.MethodPlain,
		}))

	a := &App{
		Logger:          logger,
		Extractor:       dispatcher,
		shutdownTimeout: time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second,
	}
	a.Server = NewServer(cfg, logger, a.Extractor)

	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.Server.Start)

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
