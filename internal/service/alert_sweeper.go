package service

import (
	"context"
	"stock-tracker/config"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/logger"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// AlertSweeper periodically evaluates watchlist price alerts for every user
// and logs the ones that fired.
type AlertSweeper struct {
	cfg              *config.Config
	log              *logger.Logger
	userRepo         repository.UserRepository
	watchlistService WatchlistService
	cron             *cron.Cron
}

func NewAlertSweeper(
	cfg *config.Config,
	log *logger.Logger,
	userRepo repository.UserRepository,
	watchlistService WatchlistService,
) *AlertSweeper {
	return &AlertSweeper{
		cfg:              cfg,
		log:              log,
		userRepo:         userRepo,
		watchlistService: watchlistService,
		cron:             cron.New(),
	}
}

func (s *AlertSweeper) Start(ctx context.Context) error {
	if !s.cfg.Alerts.Enabled {
		s.log.Info("Alert sweeper disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Alerts.Schedule, func() {
		if err := s.Sweep(ctx); err != nil {
			s.log.ErrorContext(ctx, "Alert sweep failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Alert sweeper started", logger.StringField("schedule", s.cfg.Alerts.Schedule))
	return nil
}

func (s *AlertSweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

// Sweep checks alerts for all users, bounded by the configured concurrency.
func (s *AlertSweeper) Sweep(ctx context.Context) error {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	maxConcurrency := s.cfg.Alerts.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	g.SetLimit(maxConcurrency)

	for _, user := range users {
		user := user
		g.Go(func() error {
			alerts, err := s.watchlistService.CheckAlerts(gctx, user.ID)
			if err != nil {
				return err
			}
			for _, alert := range alerts {
				s.log.InfoContext(gctx, "Price alert triggered",
					logger.StringField("username", user.Username),
					logger.StringField("ticker", alert.Ticker),
					logger.StringField("current_price", alert.CurrentPrice.StringFixed(2)),
					logger.StringField("target_price", alert.TargetPrice.StringFixed(2)))
			}
			return nil
		})
	}

	return g.Wait()
}
