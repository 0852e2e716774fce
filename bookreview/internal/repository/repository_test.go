package repository

import (
	"context"
	"testing"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const ns = "bookreviews.book"

func bookDoc(id primitive.ObjectID, title string, reviews ...bson.D) bson.D {
	rs := bson.A{}
	for _, r := range reviews {
		rs = append(rs, r)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "author", Value: "Frank Herbert"},
		{Key: "publishedYear", Value: int32(1965)},
		{Key: "reviews", Value: rs},
	}
}

func newTestRepo(mt *mtest.T) *repository {
	r, _ := NewRepository(mt.Coll, zap.NewNop())
	return r
}

func TestRepository_CreateBook(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		year := 1965
		book, err := newTestRepo(mt).CreateBook(context.Background(), model.Book{Title: "Dune", Author: "Frank Herbert", PublishedYear: &year})
		require.NoError(mt, err)
		require.False(mt, book.ID.IsZero())
		require.Equal(mt, "Dune", book.Title)
		require.NotNil(mt, book.Reviews)
		require.Empty(mt, book.Reviews)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		_, err := newTestRepo(mt).CreateBook(context.Background(), model.Book{Title: "Dune"})
		require.Error(mt, err)
		require.Contains(mt, err.Error(), "duplicate key error")
	})
}

func TestRepository_ListBooks(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bookDoc(id1, "Dune", bson.D{{Key: "reviewer", Value: "ann"}, {Key: "comment", Value: "great"}, {Key: "rating", Value: 5.0}}),
			bookDoc(id2, "Foundation"),
		))
		books, err := newTestRepo(mt).ListBooks(context.Background())
		require.NoError(mt, err)
		require.Len(mt, books, 2)
		require.Equal(mt, id1, books[0].ID)
		require.Equal(mt, []model.Review{{Reviewer: "ann", Comment: "great", Rating: 5}}, books[0].Reviews)
		require.Equal(mt, 1965, *books[0].PublishedYear)
		require.Equal(mt, "Foundation", books[1].Title)
		require.Empty(mt, books[1].Reviews)
	})

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		books, err := newTestRepo(mt).ListBooks(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, books)
		require.Empty(mt, books)
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))
		_, err := newTestRepo(mt).ListBooks(context.Background())
		require.Error(mt, err)
	})
}

func TestRepository_GetBook(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bookDoc(id, "Dune")))
		book, err := newTestRepo(mt).GetBook(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.Equal(mt, id, book.ID)
		require.Equal(mt, "Dune", book.Title)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := newTestRepo(mt).GetBook(context.Background(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, errs.ErrNotFound)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		_, err := newTestRepo(mt).GetBook(context.Background(), "nope")
		require.ErrorIs(mt, err, errs.ErrInvalidID)
		require.EqualError(mt, err, `Cast to ObjectId failed for value "nope" at path "_id"`)
	})
}

func TestRepository_UpdateBook(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: bookDoc(id, "Dune Messiah")}})
		title := "Dune Messiah"
		book, err := newTestRepo(mt).UpdateBook(context.Background(), id.Hex(), model.UpdateBook{Title: &title})
		require.NoError(mt, err)
		require.Equal(mt, "Dune Messiah", book.Title)
		require.Equal(mt, "Frank Herbert", book.Author)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		title := "x"
		_, err := newTestRepo(mt).UpdateBook(context.Background(), primitive.NewObjectID().Hex(), model.UpdateBook{Title: &title})
		require.ErrorIs(mt, err, errs.ErrNotFound)
	})

	mt.Run("null year cleared", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		doc := bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Dune"},
			{Key: "author", Value: "Frank Herbert"},
			{Key: "reviews", Value: bson.A{}},
		}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: doc}})
		book, err := newTestRepo(mt).UpdateBook(context.Background(), id.Hex(), model.UpdateBook{PublishedYear: model.Int{Null: true}})
		require.NoError(mt, err)
		require.Nil(mt, book.PublishedYear)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		update := started.Command.Lookup("update").Document()
		require.Equal(mt, "", update.Lookup("$unset", "publishedYear").StringValue())
		_, err = update.LookupErr("$set")
		require.Error(mt, err)
	})

	mt.Run("empty patch reads current", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bookDoc(id, "Dune")))
		book, err := newTestRepo(mt).UpdateBook(context.Background(), id.Hex(), model.UpdateBook{})
		require.NoError(mt, err)
		require.Equal(mt, "Dune", book.Title)
	})
}

func TestRepository_AppendReview(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: bookDoc(id, "Dune",
			bson.D{{Key: "reviewer", Value: "ann"}, {Key: "comment", Value: "great"}, {Key: "rating", Value: 5.0}},
			bson.D{{Key: "reviewer", Value: "bob"}, {Key: "comment", Value: "ok"}, {Key: "rating", Value: 3.0}},
		)}})
		book, err := newTestRepo(mt).AppendReview(context.Background(), id.Hex(), model.Review{Reviewer: "bob", Comment: "ok", Rating: 3})
		require.NoError(mt, err)
		require.Len(mt, book.Reviews, 2)
		require.Equal(mt, "bob", book.Reviews[1].Reviewer)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		_, err := newTestRepo(mt).AppendReview(context.Background(), "123", model.Review{})
		require.ErrorIs(mt, err, errs.ErrInvalidID)
	})
}

func TestRepository_DeleteBook(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		ok, err := newTestRepo(mt).DeleteBook(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		require.True(mt, ok)
	})

	mt.Run("absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		ok, err := newTestRepo(mt).DeleteBook(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		require.False(mt, ok)
	})
}

func TestSetDocument(t *testing.T) {
	title, genre := "Dune", "Sci-Fi"
	reviews := []model.CreateReview{{Reviewer: "ann", Comment: "c", Rating: model.NewNumber(4)}}
	set := setDocument(model.UpdateBook{
		Title:         &title,
		Genre:         &genre,
		PublishedYear: model.NewInt(1965),
		Reviews:       &reviews,
	})
	require.Equal(t, bson.D{
		{Key: "title", Value: "Dune"},
		{Key: "publishedYear", Value: 1965},
		{Key: "genre", Value: "Sci-Fi"},
		{Key: "reviews", Value: []model.Review{{Reviewer: "ann", Comment: "c", Rating: 4}}},
	}, set)
	require.Empty(t, setDocument(model.UpdateBook{ID: "abc"}))
}

func TestUpdateDocument(t *testing.T) {
	title := "Dune"
	tests := []struct {
		name string
		upd  model.UpdateBook
		want bson.D
	}{
		{
			name: "set only",
			upd:  model.UpdateBook{Title: &title},
			want: bson.D{{Key: "$set", Value: bson.D{{Key: "title", Value: "Dune"}}}},
		},
		{
			name: "set and unset",
			upd:  model.UpdateBook{Title: &title, PublishedYear: model.Int{Null: true}},
			want: bson.D{
				{Key: "$set", Value: bson.D{{Key: "title", Value: "Dune"}}},
				{Key: "$unset", Value: bson.D{{Key: "publishedYear", Value: ""}}},
			},
		},
		{
			name: "nothing to change",
			upd:  model.UpdateBook{ID: "abc"},
			want: bson.D{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, updateDocument(tt.upd))
		})
	}
}
