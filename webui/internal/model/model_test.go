package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReviewDraft_Review(t *testing.T) {
	tests := []struct {
		name   string
		draft  ReviewDraft
		want   Review
		wantOK bool
	}{
		{name: "ok", draft: ReviewDraft{Reviewer: "ann", Comment: "great", Rating: "4"}, want: Review{Reviewer: "ann", Comment: "great", Rating: 4}, wantOK: true},
		{name: "missing reviewer", draft: ReviewDraft{Comment: "great", Rating: "4"}},
		{name: "blank comment", draft: ReviewDraft{Reviewer: "ann", Comment: "  ", Rating: "4"}},
		{name: "zero rating", draft: ReviewDraft{Reviewer: "ann", Comment: "great", Rating: "0"}},
		{name: "no rating", draft: ReviewDraft{Reviewer: "ann", Comment: "great"}},
		{name: "text rating", draft: ReviewDraft{Reviewer: "ann", Comment: "great", Rating: "five"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.draft.Review()
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormOf(t *testing.T) {
	year := 1815
	require.Equal(t,
		BookForm{Title: "Emma", Author: "Jane Austen", PublishedYear: "1815", Genre: "Novel"},
		FormOf(Book{ID: "b2", Title: "Emma", Author: "Jane Austen", PublishedYear: &year, Genre: "Novel"}))
}
