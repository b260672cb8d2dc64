package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	catalogrepository "github.com/hillcosite/priceguide/internal/catalog/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (catalogdomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&catalogdomain.PricingEntry{}); err != nil {
		t.Fatal(err)
	}

	node, _ := snowflake.NewNode(1)
	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: catalogrepository.Provide(),
	})
	return svc, db, node
}

func seedEntry(t *testing.T, db *gorm.DB, node *snowflake.Node, guide, section string, active bool) {
	t.Helper()
	entry := catalogdomain.PricingEntry{
		ID:              node.Generate(),
		GuideKey:        guide,
		SectionKey:      section,
		BaseMinValue:    1000,
		DisplayMinValue: 1000,
		Version:         1,
		IsActive:        active,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatal(err)
	}
}

func TestListGrouped(t *testing.T) {
	svc, db, node := newCatalogService(t)
	seedEntry(t, db, node, "exterior", "small-home", true)
	seedEntry(t, db, node, "exterior", "small-home", true)
	seedEntry(t, db, node, "exterior", "trim-only", true)
	seedEntry(t, db, node, "interior", "ceilings", true)
	seedEntry(t, db, node, "interior", "retired", false)

	groups, err := svc.ListGrouped(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, groups, 2) {
		assert.Equal(t, "exterior", groups[0].GuideKey)
		if assert.Len(t, groups[0].Sections, 2) {
			assert.Equal(t, "small-home", groups[0].Sections[0].SectionKey)
			assert.Len(t, groups[0].Sections[0].Entries, 2)
			assert.Equal(t, "trim-only", groups[0].Sections[1].SectionKey)
		}
		assert.Equal(t, "interior", groups[1].GuideKey)
		assert.Len(t, groups[1].Sections, 1)
	}
}

func TestListGrouped_Empty(t *testing.T) {
	svc, _, _ := newCatalogService(t)

	groups, err := svc.ListGrouped(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

type brokenRepo struct{}

func (brokenRepo) ListActive(ctx context.Context, db *gorm.DB) ([]catalogdomain.PricingEntry, error) {
	return nil, errors.New("connection reset")
}

func (brokenRepo) ApplyUpdate(ctx context.Context, db *gorm.DB, update catalogdomain.EntryUpdate) error {
	return nil
}

func TestListGrouped_UnreadableCatalog(t *testing.T) {
	svc := New(Params{Log: zap.NewNop(), Repo: brokenRepo{}})

	_, err := svc.ListGrouped(context.Background())
	assert.ErrorIs(t, err, catalogdomain.ErrCatalogUnreadable)
}
