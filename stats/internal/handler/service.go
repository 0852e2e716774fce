package handler

import (
	"context"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/stats/internal/model"
	"github.com/Astemirdum/bookreview-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	GetBookStats(ctx context.Context, bookID string) (model.BookStats, error)
	SaveEvent(ctx context.Context, event kafka.BookEvent) error
}

var _ StatsService = (*service.Service)(nil)
