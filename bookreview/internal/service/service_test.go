package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	repo_mocks "github.com/Astemirdum/bookreview-service/bookreview/internal/repository/mocks"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	events []kafka.BookEvent
}

func (p *recordingPublisher) Publish(event kafka.BookEvent) {
	p.events = append(p.events, event)
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *recordingPublisher) {
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{}
	return service.NewService(repo, pub, zap.NewNop()), repo, pub
}

func TestService_CreateBook(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()
	req := model.CreateBook{Title: "Dune", Author: "Frank Herbert", PublishedYear: model.NewInt(1965)}

	repo.EXPECT().CreateBook(ctx, req.Book()).DoAndReturn(func(_ context.Context, b model.Book) (model.Book, error) {
		b.ID = id
		return b, nil
	})

	book, err := svc.CreateBook(ctx, req)
	require.NoError(t, err)
	require.Equal(t, id, book.ID)
	require.Equal(t, []model.Review{}, book.Reviews)
	require.Len(t, pub.events, 1)
	require.Equal(t, kafka.EventBookCreated, pub.events[0].Type)
	require.Equal(t, id.Hex(), pub.events[0].BookID)
}

func TestService_CreateBook_StoreError(t *testing.T) {
	svc, repo, pub := newService(t)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, errors.New("store down"))

	_, err := svc.CreateBook(context.Background(), model.CreateBook{Title: "x"})
	require.EqualError(t, err, "store down")
	require.Empty(t, pub.events)
}

func TestService_UpdateBook(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()
	title := "Children of Dune"

	repo.EXPECT().UpdateBook(ctx, "b1", model.UpdateBook{Title: &title}).Return(model.Book{Title: title}, nil)
	repo.EXPECT().UpdateBook(ctx, "b1", model.UpdateBook{}).Return(model.Book{Title: title}, nil)

	_, err := svc.UpdateBook(ctx, "b1", model.UpdateBook{Title: &title})
	require.NoError(t, err)
	_, err = svc.UpdateBook(ctx, "b1", model.UpdateBook{})
	require.NoError(t, err)

	// the empty patch changes nothing and is not announced
	require.Len(t, pub.events, 1)
	require.Equal(t, kafka.EventBookUpdated, pub.events[0].Type)
}

func TestService_DeleteBook(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteBook(ctx, "present").Return(true, nil)
	repo.EXPECT().DeleteBook(ctx, "absent").Return(false, nil)
	repo.EXPECT().DeleteBook(ctx, "bad").Return(false, &errs.InvalidIDError{Value: "bad"})

	require.NoError(t, svc.DeleteBook(ctx, "present"))
	require.NoError(t, svc.DeleteBook(ctx, "absent"))
	require.ErrorIs(t, svc.DeleteBook(ctx, "bad"), errs.ErrInvalidID)

	require.Len(t, pub.events, 1)
	require.Equal(t, kafka.BookEvent{Type: kafka.EventBookDeleted, BookID: "present"}, pub.events[0])
}

func TestService_AppendReview(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()
	review := model.CreateReview{Reviewer: "ann", Comment: "good", Rating: model.NewNumber(4)}

	repo.EXPECT().AppendReview(ctx, id.Hex(), model.Review{Reviewer: "ann", Comment: "good", Rating: 4}).
		Return(model.Book{ID: id, Title: "Dune", Reviews: []model.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}}, nil)

	book, err := svc.AppendReview(ctx, id.Hex(), review)
	require.NoError(t, err)
	require.Len(t, book.Reviews, 3)
	require.Equal(t, kafka.BookEvent{Type: kafka.EventReviewAdded, BookID: id.Hex(), Title: "Dune", Rating: 4, Reviews: 3}, pub.events[0])
}

func TestService_AppendReview_NotFound(t *testing.T) {
	svc, repo, pub := newService(t)
	repo.EXPECT().AppendReview(gomock.Any(), "b1", gomock.Any()).Return(model.Book{}, errs.ErrNotFound)

	_, err := svc.AppendReview(context.Background(), "b1", model.CreateReview{})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Empty(t, pub.events)
}

func TestAverageRating(t *testing.T) {
	require.Zero(t, service.AverageRating(nil))
	require.Equal(t, 4.0, service.AverageRating([]model.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}))
	require.Equal(t, 4.5, service.AverageRating([]model.Review{{Rating: 4}, {Rating: 5}}))
}
