package app

import (
	"context"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	"github.com/NandoXu/ig-reels-analytics/internal/extract/browser"
	"github.com/NandoXu/ig-reels-analytics/internal/extract/direct"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram/instagramimpl"
	"github.com/NandoXu/ig-reels-analytics/internal/pipeline"
	"github.com/NandoXu/ig-reels-analytics/internal/pipeline/pipelineimpl"
	"github.com/NandoXu/ig-reels-analytics/internal/refresher"
	repositories "github.com/NandoXu/ig-reels-analytics/internal/repositories/fx"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"github.com/NandoXu/ig-reels-analytics/internal/sqlite"
	"github.com/NandoXu/ig-reels-analytics/internal/status"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		sqlite.New,
		status.NewLogger,
		refresher.New,
	),
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			direct.New,
			fx.As(new(extract.DirectViewsExtractor)),
		),
		fx.Annotate(
			browser.New,
			fx.As(new(extract.LikesExtractor)),
			fx.As(new(extract.GridViewsExtractor)),
		),
		fx.Annotate(
			pipelineimpl.New,
			fx.As(new(pipeline.Client)),
		),
	),
	repositories.Module,
)

// Deps is the dependency set handed to a command body by Run.
type Deps struct {
	fx.In

	Pipeline  pipeline.Client
	Records   record.Repository
	Instagram instagram.Client
	Refresher *refresher.Refresher
	Config    *config.Config
	Logger    logger.Logger
}

const lifecycleTimeout = 30 * time.Second

// Run builds the container, starts it, executes fn and tears everything down
// again. One-shot commands are the only consumers; long-running commands
// block inside fn until their context is done.
func Run(ctx context.Context, fn func(ctx context.Context, deps Deps) error) error {
	var deps Deps
	fxApp := fx.New(
		Module,
		fx.NopLogger,
		fx.Populate(&deps),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx, deps)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		deps.Logger.Error("Shutdown error", "error", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}
