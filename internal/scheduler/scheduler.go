package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/config"
	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/internal/repository/mongodb"
	"github.com/marianadoces/console/internal/repository/sheets"
)

// Summarizer produces the one-day sales summary the job pushes to its sinks.
type Summarizer interface {
	DailySummary(ctx context.Context, date time.Time) (*models.DailySummary, error)
}

// Scheduler runs the daily-summary job: compute the previous day's sales
// summary and push it to the configured sinks. Either sink may be absent.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc Summarizer
	archive      mongodb.Repository
	sheet        sheets.Repository
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone. A bad
// timezone falls back to the process local zone.
func NewScheduler(cfg config.ReportingConfig, reportingSvc Summarizer, archive mongodb.Repository, sheet sheets.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		archive:      archive,
		sheet:        sheet,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the daily-summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailySummary); err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailySummary() {
	s.logger.Info("generating daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// The job fires after close of business; it always summarizes the
	// previous full day, never the in-progress one.
	day := time.Now().In(s.cron.Location()).AddDate(0, 0, -1)
	summary, err := s.reportingSvc.DailySummary(ctx, day)
	if err != nil {
		s.logger.Error("failed to generate daily summary", zap.Error(err))
		return
	}

	if s.archive != nil {
		if err := s.archive.SaveDailySummary(ctx, *summary); err != nil {
			s.logger.Error("failed to archive daily summary", zap.Error(err))
		}
	} else {
		s.logger.Debug("summary archive not configured, skipping")
	}

	if s.sheet != nil {
		if err := s.sheet.AppendDailySummary(ctx, *summary); err != nil {
			s.logger.Error("failed to export daily summary to sheet", zap.Error(err))
		}
	} else {
		s.logger.Debug("sheet export not configured, skipping")
	}

	s.logger.Info("daily summary completed",
		zap.Int("orders", summary.OrderCount),
		zap.Float64("gross", summary.GrossRevenue))
}
