package service

import (
	"context"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/stats/internal/errs"
	"github.com/Astemirdum/bookreview-service/stats/internal/model"
	statsRepo "github.com/Astemirdum/bookreview-service/stats/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return model.StatsInfo{}, err
	}
	if stats.Data == nil {
		stats.Data = []model.BookStats{}
	}
	return stats, nil
}

func (s *Service) GetBookStats(ctx context.Context, bookID string) (model.BookStats, error) {
	return s.repo.GetBookStats(ctx, bookID)
}

// SaveEvent is used by the kafka consumer. Redelivered events are dropped.
func (s *Service) SaveEvent(ctx context.Context, event kafka.BookEvent) error {
	err := s.repo.SaveEvent(ctx, event)
	if errors.Is(err, errs.ErrDuplicateEvent) {
		s.log.Debug("duplicate event", zap.String("id", event.ID))
		return nil
	}
	return err
}
