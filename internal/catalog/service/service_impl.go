package service

import (
	"context"
	"fmt"

	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo catalogdomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo catalogdomain.Repository
}

func New(p Params) catalogdomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) ListGrouped(ctx context.Context) ([]catalogdomain.GuideGroup, error) {
	entries, err := s.repo.ListActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalogdomain.ErrCatalogUnreadable, err)
	}

	groups := make([]catalogdomain.GuideGroup, 0)
	for _, entry := range entries {
		if len(groups) == 0 || groups[len(groups)-1].GuideKey != entry.GuideKey {
			groups = append(groups, catalogdomain.GuideGroup{GuideKey: entry.GuideKey})
		}
		guide := &groups[len(groups)-1]
		if len(guide.Sections) == 0 || guide.Sections[len(guide.Sections)-1].SectionKey != entry.SectionKey {
			guide.Sections = append(guide.Sections, catalogdomain.SectionGroup{SectionKey: entry.SectionKey})
		}
		section := &guide.Sections[len(guide.Sections)-1]
		section.Entries = append(section.Entries, entry)
	}
	return groups, nil
}
