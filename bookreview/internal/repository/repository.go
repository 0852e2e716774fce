package repository

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, upd model.UpdateBook) (model.Book, error)
	DeleteBook(ctx context.Context, id string) (bool, error)
	AppendReview(ctx context.Context, id string, review model.Review) (model.Book, error)
}

type repository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRepository(coll *mongo.Collection, log *zap.Logger) (*repository, error) {
	return &repository{
		coll: coll,
		log:  log.Named("repo"),
	}, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &errs.InvalidIDError{Value: id}
	}
	return oid, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	book.ID = primitive.NilObjectID
	if book.Reviews == nil {
		book.Reviews = []model.Review{}
	}
	res, err := r.coll.InsertOne(ctx, book)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "insert book")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Book{}, errors.Errorf("unexpected inserted id %v", res.InsertedID)
	}
	book.ID = oid
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find books")
	}
	books := make([]model.Book, 0)
	if err = cur.All(ctx, &books); err != nil {
		return nil, errors.Wrap(err, "decode books")
	}
	for i := range books {
		normalize(&books[i])
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, errors.Wrap(err, "find book")
	}
	normalize(&book)
	return book, nil
}

// UpdateBook applies a $set of the fields present in upd, matching
// findByIdAndUpdate semantics: omitted fields keep their values and a
// publishedYear sent as null is removed.
func (r *repository) UpdateBook(ctx context.Context, id string, upd model.UpdateBook) (model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	update := updateDocument(upd)
	if len(update) == 0 {
		return r.GetBook(ctx, id)
	}
	r.log.Debug("UpdateBook", zap.String("id", id), zap.Any("update", update))

	return r.findOneAndUpdate(ctx, oid, update)
}

// AppendReview pushes the review store-side, so concurrent appends do not
// overwrite each other.
func (r *repository) AppendReview(ctx context.Context, id string, review model.Review) (model.Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	return r.findOneAndUpdate(ctx, oid, bson.D{{Key: "$push", Value: bson.D{{Key: "reviews", Value: review}}}})
}

func (r *repository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.D) (model.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var book model.Book
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, errors.Wrap(err, "update book")
	}
	normalize(&book)
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, errors.Wrap(err, "delete book")
	}
	return res.DeletedCount > 0, nil
}

func updateDocument(upd model.UpdateBook) bson.D {
	update := bson.D{}
	if set := setDocument(upd); len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if upd.PublishedYear.Null {
		update = append(update, bson.E{Key: "$unset", Value: bson.D{{Key: "publishedYear", Value: ""}}})
	}
	return update
}

func setDocument(upd model.UpdateBook) bson.D {
	set := bson.D{}
	if upd.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *upd.Title})
	}
	if upd.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *upd.Author})
	}
	if upd.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *upd.Description})
	}
	if upd.PublishedYear.Set {
		set = append(set, bson.E{Key: "publishedYear", Value: upd.PublishedYear.Value})
	}
	if upd.Genre != nil {
		set = append(set, bson.E{Key: "genre", Value: *upd.Genre})
	}
	if upd.Reviews != nil {
		set = append(set, bson.E{Key: "reviews", Value: model.Reviews(*upd.Reviews)})
	}
	return set
}

func normalize(book *model.Book) {
	if book.Reviews == nil {
		book.Reviews = []model.Review{}
	}
}
