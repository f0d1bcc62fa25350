package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Watch runs the scan on a cron schedule, starting immediately, until ctx
// is done. A run that is still going when the next one is due pushes that
// one to the following slot.
func (a *App) Watch(ctx context.Context, schedule string) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("cannot create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(func() {
			if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("Scheduled scan failed", zap.Error(err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	a.logger.Info("Watching feed", zap.String("feed", a.feed), zap.String("schedule", schedule))
	s.Start()

	<-ctx.Done()
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("scheduler shutdown: %w", err)
	}
	return nil
}
