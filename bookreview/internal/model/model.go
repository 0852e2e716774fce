package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a catalog entry. Optional fields are pointers so that a field
// sent as "" is stored and returned as "", while an omitted one stays absent.
type Book struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Author        string             `json:"author" bson:"author"`
	Description   *string            `json:"description,omitempty" bson:"description,omitempty"`
	PublishedYear *int               `json:"publishedYear,omitempty" bson:"publishedYear,omitempty"`
	Genre         *string            `json:"genre,omitempty" bson:"genre,omitempty"`
	Reviews       []Review           `json:"reviews" bson:"reviews"`
}

type Review struct {
	Reviewer string  `json:"reviewer" bson:"reviewer"`
	Comment  string  `json:"comment" bson:"comment"`
	Rating   float64 `json:"rating" bson:"rating"`
}

// CreateBook is the accepted shape of a new book. Reviews are dropped on create.
type CreateBook struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	Description   *string `json:"description"`
	PublishedYear Int     `json:"publishedYear" validate:"omitempty,min=0,max=9999"`
	Genre         *string `json:"genre"`
}

func (b CreateBook) Book() Book {
	return Book{
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		PublishedYear: b.PublishedYear.Ptr(),
		Genre:         b.Genre,
		Reviews:       []Review{},
	}
}

// UpdateBook carries only the fields present in the request body.
type UpdateBook struct {
	Title         *string         `json:"title" validate:"omitempty,min=1"`
	Author        *string         `json:"author" validate:"omitempty,min=1"`
	Description   *string         `json:"description"`
	PublishedYear Int             `json:"publishedYear" validate:"omitempty,min=0,max=9999"`
	Genre         *string         `json:"genre"`
	Reviews       *[]CreateReview `json:"reviews" validate:"omitempty,dive"`
	// The client echoes the whole document back on review submission.
	ID      string `json:"_id" validate:"-"`
	Version *int   `json:"__v" validate:"-"`
}

func (u UpdateBook) Empty() bool {
	return u.Title == nil && u.Author == nil && u.Description == nil &&
		!u.PublishedYear.Present() && u.Genre == nil && u.Reviews == nil
}

type CreateReview struct {
	Reviewer string `json:"reviewer" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
	Rating   Number `json:"rating" validate:"required,min=1,max=5"`
}

func (r CreateReview) Review() Review {
	return Review{
		Reviewer: r.Reviewer,
		Comment:  r.Comment,
		Rating:   r.Rating.Value,
	}
}

func Reviews(in []CreateReview) []Review {
	out := make([]Review, 0, len(in))
	for _, r := range in {
		out = append(out, r.Review())
	}
	return out
}

type Message struct {
	Message string `json:"message"`
}
