package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/hillcosite/priceguide/internal/clock"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"github.com/hillcosite/priceguide/internal/rate/fetch"
	"github.com/hillcosite/priceguide/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    ratedomain.Repository
	Fetcher fetch.Fetcher
}

// Service resolves the CPI rate for a year through an ordered list of
// sources: the persisted rate store, then the external fetch service. The
// first source that yields a rate wins; a persisted rate always shadows a
// live one so re-runs within a year stay deterministic.
type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    ratedomain.Repository
	fetcher fetch.Fetcher
}

type source struct {
	name string
	// lookup returns (nil, nil) when the source has no rate for the year,
	// which is not an error: the next source is tried.
	lookup func(ctx context.Context, year int) (*ratedomain.Resolved, error)
}

func New(p Params) ratedomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("rate.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		fetcher: p.Fetcher,
	}
}

func (s *Service) Resolve(ctx context.Context, year int) (*ratedomain.Resolved, error) {
	if year <= 0 {
		return nil, ratedomain.ErrInvalidYear
	}

	sources := []source{
		{name: "store", lookup: s.fromStore},
		{name: "fetch", lookup: s.fromFetch},
	}

	var lastErr error
	for _, src := range sources {
		resolved, err := src.lookup(ctx, year)
		if err != nil {
			s.log.Warn("rate source failed",
				zap.String("source", src.name),
				zap.Int("year", year),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if resolved == nil {
			continue
		}
		s.log.Info("rate resolved",
			zap.String("source", src.name),
			zap.Int("year", year),
			zap.Float64("cpi_rate", resolved.Rate),
		)
		return resolved, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ratedomain.ErrRateUnavailable, lastErr)
	}
	return nil, ratedomain.ErrRateUnavailable
}

func (s *Service) List(ctx context.Context) ([]ratedomain.InflationRate, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) fromStore(ctx context.Context, year int) (*ratedomain.Resolved, error) {
	rate, err := s.repo.FindByYear(ctx, s.db, year)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, nil
	}
	return &ratedomain.Resolved{Rate: rate.CPIRate, Source: rate.DataSource}, nil
}

func (s *Service) fromFetch(ctx context.Context, year int) (*ratedomain.Resolved, error) {
	resolved, err := s.fetcher.Fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	// Persist the fetched rate so later runs in the same year reuse it.
	record := &ratedomain.InflationRate{
		ID:         s.genID.Generate(),
		Year:       year,
		CPIRate:    resolved.Rate,
		DataSource: resolved.Source,
		IsApplied:  false,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, record); err != nil && !db.IsDuplicateKeyErr(err) {
		s.log.Warn("failed to persist fetched rate", zap.Int("year", year), zap.Error(err))
	}

	return resolved, nil
}
