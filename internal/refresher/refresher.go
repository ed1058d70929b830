// Package refresher periodically re-scrapes every stored record so the
// engagement numbers keep tracking the live post.
package refresher

import (
	"context"
	"fmt"

	"github.com/NandoXu/ig-reels-analytics/internal/pipeline"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories/record"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Pipeline pipeline.Client
	Records  record.Repository
	Config   *config.Config
	Logger   logger.Logger
}

type Refresher struct {
	pipeline  pipeline.Client
	records   record.Repository
	config    *config.Config
	logger    logger.Logger
	scheduler gocron.Scheduler
}

func New(opts Opts) *Refresher {
	return &Refresher{
		pipeline: opts.Pipeline,
		records:  opts.Records,
		config:   opts.Config,
		logger:   opts.Logger.WithComponent("Refresher"),
	}
}

// Start schedules the periodic refresh. It is a no-op when refresh is
// disabled in config.
func (r *Refresher) Start(ctx context.Context) error {
	if !r.config.Refresh.Enabled {
		r.logger.Info("Periodic refresh disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create refresh scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(r.config.Refresh.Interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			if err := r.RefreshAll(ctx); err != nil {
				r.logger.Error("Refresh pass failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}

	scheduler.Start()
	r.scheduler = scheduler
	r.logger.Info("Periodic refresh scheduled", "interval", r.config.Refresh.Interval)
	return nil
}

func (r *Refresher) Stop() error {
	if r.scheduler == nil {
		return nil
	}
	return r.scheduler.Shutdown()
}

// RefreshAll re-scrapes every stored record sequentially, persisting each
// result before the next begins.
func (r *Refresher) RefreshAll(ctx context.Context) error {
	stored, err := r.records.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if len(stored) == 0 {
		r.logger.Info("No records to refresh")
		return nil
	}

	r.logger.Info("Refreshing stored records", "count", len(stored))
	links := make([]string, 0, len(stored))
	for _, rec := range stored {
		links = append(links, rec.URL)
	}

	_, err = r.pipeline.Batch(ctx, links, r.config.Instagram.Username)
	return err
}
