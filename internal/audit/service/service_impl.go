package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/hillcosite/priceguide/internal/audit/domain"
	"github.com/hillcosite/priceguide/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  auditdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  auditdomain.Repository
}

func NewService(p Params) auditdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, logType auditdomain.LogType, operation, message string, metadata map[string]any) {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		operation = "unknown"
	}

	payload := map[string]any{}
	for key, value := range metadata {
		if key == "" {
			continue
		}
		payload[key] = value
	}

	entry := auditdomain.AutomationLog{
		ID:        s.genID.Generate(),
		LogType:   logType,
		Operation: operation,
		Message:   message,
		Metadata:  datatypes.JSONMap(payload),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		s.log.Warn("failed to write automation log",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}

func (s *Service) List(ctx context.Context, limit int) ([]auditdomain.AutomationLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 250 {
		limit = 250
	}
	return s.repo.List(ctx, s.db, limit)
}
