package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	auditdomain "github.com/hillcosite/priceguide/internal/audit/domain"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"github.com/hillcosite/priceguide/internal/clock"
	"github.com/hillcosite/priceguide/internal/config"
	"github.com/hillcosite/priceguide/internal/notify"
	obsmetrics "github.com/hillcosite/priceguide/internal/observability/metrics"
	pipelinedomain "github.com/hillcosite/priceguide/internal/pipeline/domain"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	Cfg         *config.PipelineConfigHolder
	CatalogRepo catalogdomain.Repository
	RateRepo    ratedomain.Repository
	RateSvc     ratedomain.Service
	AuditSvc    auditdomain.Service
	Notifier    notify.Provider
	Metrics     *obsmetrics.PipelineMetrics `optional:"true"`
}

// Service orchestrates one inflation run: resolve rate, diff the catalog,
// then either return the preview (dry run) or commit, notify and audit.
type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	cfg         *config.PipelineConfigHolder
	catalogRepo catalogdomain.Repository
	rateRepo    ratedomain.Repository
	rateSvc     ratedomain.Service
	auditSvc    auditdomain.Service
	notifier    notify.Provider
	metrics     *obsmetrics.PipelineMetrics
}

func New(p Params) pipelinedomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("pipeline.service"),
		clock:       p.Clock,
		cfg:         p.Cfg,
		catalogRepo: p.CatalogRepo,
		rateRepo:    p.RateRepo,
		rateSvc:     p.RateSvc,
		auditSvc:    p.AuditSvc,
		notifier:    p.Notifier,
		metrics:     p.Metrics,
	}
}

const (
	opRunStart     = "inflation_run_start"
	opRateResolved = "inflation_rate_resolved"
	opRunSuccess   = "inflation_run_success"
	opRunFailure   = "inflation_run_failure"
)

func (s *Service) Run(ctx context.Context, req pipelinedomain.RunRequest) (*pipelinedomain.RunResult, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := s.log.With(
		zap.String("run_id", runID),
		zap.Int("year", req.Year),
		zap.Bool("dry_run", req.DryRun),
	)

	log.Info("inflation run started")
	s.auditSvc.Record(ctx, auditdomain.LogTypeInfo, opRunStart,
		fmt.Sprintf("inflation run started for %d", req.Year),
		map[string]any{"run_id": runID, "year": req.Year, "dry_run": req.DryRun},
	)

	resolved, err := s.rateSvc.Resolve(ctx, req.Year)
	if err != nil {
		return nil, s.fail(ctx, req, log, started, runID, err)
	}

	// Previews are silent by design: beyond the start record, only live
	// runs write audit entries or notify.
	if !req.DryRun {
		s.auditSvc.Record(ctx, auditdomain.LogTypeInfo, opRateResolved,
			fmt.Sprintf("resolved %.2f%% CPI for %d from %s", resolved.Rate, req.Year, resolved.Source),
			map[string]any{"run_id": runID, "year": req.Year, "cpi_rate": resolved.Rate, "source": resolved.Source},
		)
	}

	entries, err := s.catalogRepo.ListActive(ctx, s.db)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", catalogdomain.ErrCatalogUnreadable, err)
		return nil, s.fail(ctx, req, log, started, runID, wrapped)
	}

	updates := ComputeUpdates(entries, resolved.Rate)
	result := &pipelinedomain.RunResult{
		Success:       true,
		DryRun:        req.DryRun,
		Year:          req.Year,
		CPIRate:       resolved.Rate,
		RateSource:    resolved.Source,
		PricesUpdated: len(updates),
		Updates:       updates,
		SampleChanges: sampleOf(updates, s.cfg.Get().NotificationSampleSize),
	}

	if req.DryRun {
		s.metrics.ObserveRun(true, true, time.Since(started).Seconds())
		log.Info("dry run complete", zap.Int("prices_updated", result.PricesUpdated))
		return result, nil
	}

	if err := s.commit(ctx, updates, req.Year); err != nil {
		return nil, s.fail(ctx, req, log, started, runID, err)
	}

	s.auditSvc.Record(ctx, auditdomain.LogTypeSuccess, opRunSuccess,
		fmt.Sprintf("updated %d entries at %.2f%% CPI for %d", len(updates), resolved.Rate, req.Year),
		map[string]any{"run_id": runID, "year": req.Year, "cpi_rate": resolved.Rate, "prices_updated": len(updates)},
	)
	s.sendNotification(ctx, log, notify.RunSummary{
		Success:       true,
		Year:          req.Year,
		CPIRate:       resolved.Rate,
		RateSource:    resolved.Source,
		PricesUpdated: len(updates),
		SampleChanges: toChanges(result.SampleChanges),
	})

	s.metrics.ObserveRun(false, true, time.Since(started).Seconds())
	s.metrics.AddEntriesUpdated(len(updates))
	log.Info("inflation run complete", zap.Int("prices_updated", result.PricesUpdated))
	return result, nil
}

// fail records the terminal failure, notifies on live runs only, and hands
// the error back unchanged for the HTTP layer to map.
func (s *Service) fail(ctx context.Context, req pipelinedomain.RunRequest, log *zap.Logger, started time.Time, runID string, err error) error {
	s.auditSvc.Record(ctx, auditdomain.LogTypeError, opRunFailure, err.Error(),
		map[string]any{"run_id": runID, "year": req.Year, "dry_run": req.DryRun},
	)
	if !req.DryRun {
		s.sendNotification(ctx, log, notify.RunSummary{
			Success: false,
			Year:    req.Year,
			Error:   err.Error(),
		})
	}
	s.metrics.ObserveRun(req.DryRun, false, time.Since(started).Seconds())
	log.Error("inflation run failed", zap.Error(err))
	return err
}

// sendNotification is best-effort: a failed dispatch is logged and swallowed,
// it never changes the run's outcome.
func (s *Service) sendNotification(ctx context.Context, log *zap.Logger, summary notify.RunSummary) {
	if err := s.notifier.Notify(ctx, summary); err != nil {
		log.Warn("notification dispatch failed", zap.Error(err))
	}
}

func sampleOf(updates []pipelinedomain.UpdateResult, size int) []pipelinedomain.UpdateResult {
	if size <= 0 || len(updates) <= size {
		return updates
	}
	return updates[:size]
}

func toChanges(updates []pipelinedomain.UpdateResult) []notify.Change {
	changes := make([]notify.Change, 0, len(updates))
	for _, update := range updates {
		changes = append(changes, notify.Change{
			Name:     update.Name,
			OldPrice: update.OldPrice,
			NewPrice: update.NewPrice,
		})
	}
	return changes
}
