package handler

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBook) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBook) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	AppendReview(ctx context.Context, id string, req model.CreateReview) (model.Book, error)
}

var _ BookService = (*service.Service)(nil)
