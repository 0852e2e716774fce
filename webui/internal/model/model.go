package model

import (
	"strconv"
	"strings"
)

type Book struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description,omitempty"`
	PublishedYear *int     `json:"publishedYear,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Reviews       []Review `json:"reviews"`
}

type Review struct {
	Reviewer string  `json:"reviewer"`
	Comment  string  `json:"comment"`
	Rating   float64 `json:"rating"`
}

// BookForm holds the add and edit form fields as typed. The year is sent
// as text and coerced by the API.
type BookForm struct {
	Title         string `json:"title" form:"title"`
	Author        string `json:"author" form:"author"`
	Description   string `json:"description" form:"description"`
	PublishedYear string `json:"publishedYear" form:"publishedYear"`
	Genre         string `json:"genre" form:"genre"`
}

func FormOf(b Book) BookForm {
	f := BookForm{
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Genre:       b.Genre,
	}
	if b.PublishedYear != nil {
		f.PublishedYear = strconv.Itoa(*b.PublishedYear)
	}
	return f
}

type ReviewDraft struct {
	Reviewer string `form:"reviewer"`
	Comment  string `form:"comment"`
	Rating   string `form:"rating"`
}

// Review converts a draft that has a reviewer, a comment and a non-zero
// numeric rating. ok is false otherwise.
func (d ReviewDraft) Review() (review Review, ok bool) {
	if strings.TrimSpace(d.Reviewer) == "" || strings.TrimSpace(d.Comment) == "" {
		return Review{}, false
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(d.Rating), 64)
	if err != nil || rating == 0 {
		return Review{}, false
	}
	return Review{Reviewer: d.Reviewer, Comment: d.Comment, Rating: rating}, true
}
