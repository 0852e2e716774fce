package service

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/events"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	bookRepo "github.com/Astemirdum/bookreview-service/bookreview/internal/repository"
	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	repo      bookRepo.Repository
	publisher events.Publisher
}

func NewService(repo bookRepo.Repository, publisher events.Publisher, log *zap.Logger) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		publisher: publisher,
	}
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBook) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req.Book())
	if err != nil {
		return model.Book{}, err
	}
	s.publish(kafka.EventBookCreated, book)
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) UpdateBook(ctx context.Context, id string, req model.UpdateBook) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		return model.Book{}, err
	}
	if !req.Empty() {
		s.publish(kafka.EventBookUpdated, book)
	}
	return book, nil
}

// DeleteBook succeeds whether or not the book existed.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.publisher.Publish(kafka.BookEvent{Type: kafka.EventBookDeleted, BookID: id})
	}
	return nil
}

func (s *Service) AppendReview(ctx context.Context, id string, req model.CreateReview) (model.Book, error) {
	book, err := s.repo.AppendReview(ctx, id, req.Review())
	if err != nil {
		return model.Book{}, err
	}
	s.publish(kafka.EventReviewAdded, book)
	return book, nil
}

func (s *Service) publish(typ kafka.EventType, book model.Book) {
	s.publisher.Publish(kafka.BookEvent{
		Type:    typ,
		BookID:  book.ID.Hex(),
		Title:   book.Title,
		Rating:  AverageRating(book.Reviews),
		Reviews: len(book.Reviews),
	})
}

// AverageRating returns 0 for a book without reviews.
func AverageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
