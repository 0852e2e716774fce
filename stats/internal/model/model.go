package model

import "time"

// BookStats aggregates the events of one book. Title, Reviews and AvgRating
// come from the latest event that still described the book.
type BookStats struct {
	BookID      string    `json:"bookId" db:"book_id"`
	Title       string    `json:"title" db:"title"`
	Reviews     int       `json:"reviews" db:"reviews"`
	AvgRating   float64   `json:"avgRating" db:"avg_rating"`
	Updates     int       `json:"updates" db:"updates"`
	Deleted     bool      `json:"deleted" db:"deleted"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
}

type StatsInfo struct {
	Data []BookStats `json:"data"`
}
