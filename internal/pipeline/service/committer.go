package service

import (
	"context"
	"fmt"

	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	pipelinedomain "github.com/hillcosite/priceguide/internal/pipeline/domain"
	"golang.org/x/sync/errgroup"
)

// commit fans out the entry writes (no cross-entry ordering dependency) and,
// only after every write succeeded, marks the year's rate as applied. There
// is no rollback: entries written before a failure stay written, the failure
// is surfaced, and the operator inspects the automation log before retrying.
func (s *Service) commit(ctx context.Context, updates []pipelinedomain.UpdateResult, year int) error {
	now := s.clock.Now()
	concurrency := s.cfg.Get().CommitConcurrency

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for _, update := range updates {
		g.Go(func() error {
			err := s.catalogRepo.ApplyUpdate(ctx, s.db, catalogdomain.EntryUpdate{
				ID:              update.EntryID,
				BaseMinValue:    update.NewBaseMin,
				BaseMaxValue:    update.NewBaseMax,
				DisplayMinValue: update.NewDisplayMin,
				DisplayMaxValue: update.NewDisplayMax,
				InflatedYear:    year,
				UpdatedAt:       now,
			})
			if err != nil {
				return fmt.Errorf("entry %s (%s): %w", update.EntryID, update.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", pipelinedomain.ErrCommitFailed, err)
	}

	if err := s.rateRepo.MarkApplied(ctx, s.db, year, s.clock.Now()); err != nil {
		return fmt.Errorf("%w: mark rate applied: %v", pipelinedomain.ErrCommitFailed, err)
	}
	return nil
}
