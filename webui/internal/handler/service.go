package handler

import (
	"context"

	"github.com/Astemirdum/bookreview-service/webui/internal/client"
	"github.com/Astemirdum/bookreview-service/webui/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookAPI interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, form model.BookForm) (model.Book, error)
	UpdateBook(ctx context.Context, id string, body interface{}) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	AppendReview(ctx context.Context, id string, review model.Review) (model.Book, error)
}

var _ BookAPI = (*client.Client)(nil)
