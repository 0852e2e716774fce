package state

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Astemirdum/bookreview-service/webui/internal/model"
)

const AlertIncompleteReview = "Please fill in all review fields."

// State is everything one browser session sees. Maps are keyed by book id
// and never shared between two State values.
type State struct {
	Books        []model.Book
	Search       string
	NewBook      model.BookForm
	EditID       string
	EditDraft    model.BookForm
	ReviewDrafts map[string]model.ReviewDraft
	Expanded     map[string]bool
	Alert        string
}

func New() State {
	return State{
		ReviewDrafts: map[string]model.ReviewDraft{},
		Expanded:     map[string]bool{},
	}
}

type Action interface {
	apply(s *State)
}

// BooksLoaded replaces the list with a fresh fetch.
type BooksLoaded struct{ Books []model.Book }

type SearchChanged struct{ Term string }

type NewBookChanged struct{ Form model.BookForm }

// BookCreated clears the add form.
type BookCreated struct{}

type EditStarted struct{ Book model.Book }

type EditChanged struct{ Form model.BookForm }

// EditFinished leaves edit mode after a save or a cancel.
type EditFinished struct{}

type ReviewDraftChanged struct {
	BookID string
	Draft  model.ReviewDraft
}

// ReviewRejected raises the incomplete review alert.
type ReviewRejected struct{ BookID string }

// ReviewSubmitted clears the draft of the book.
type ReviewSubmitted struct{ BookID string }

type ShowMoreToggled struct{ BookID string }

type AlertDismissed struct{}

func (a BooksLoaded) apply(s *State) {
	s.Books = a.Books
	if s.Books == nil {
		s.Books = []model.Book{}
	}
}

func (a SearchChanged) apply(s *State) { s.Search = a.Term }

func (a NewBookChanged) apply(s *State) { s.NewBook = a.Form }

func (BookCreated) apply(s *State) { s.NewBook = model.BookForm{} }

func (a EditStarted) apply(s *State) {
	s.EditID = a.Book.ID
	s.EditDraft = model.FormOf(a.Book)
}

func (a EditChanged) apply(s *State) { s.EditDraft = a.Form }

func (EditFinished) apply(s *State) {
	s.EditID = ""
	s.EditDraft = model.BookForm{}
}

func (a ReviewDraftChanged) apply(s *State) { s.ReviewDrafts[a.BookID] = a.Draft }

func (a ReviewRejected) apply(s *State) { s.Alert = AlertIncompleteReview }

func (a ReviewSubmitted) apply(s *State) { delete(s.ReviewDrafts, a.BookID) }

func (a ShowMoreToggled) apply(s *State) {
	if s.Expanded[a.BookID] {
		delete(s.Expanded, a.BookID)
		return
	}
	s.Expanded[a.BookID] = true
}

func (AlertDismissed) apply(s *State) { s.Alert = "" }

// Reduce returns the state after a. s is left untouched.
func Reduce(s State, a Action) State {
	next := s.clone()
	a.apply(&next)
	return next
}

func (s State) clone() State {
	next := s
	next.ReviewDrafts = make(map[string]model.ReviewDraft, len(s.ReviewDrafts))
	for id, d := range s.ReviewDrafts {
		next.ReviewDrafts[id] = d
	}
	next.Expanded = make(map[string]bool, len(s.Expanded))
	for id, v := range s.Expanded {
		next.Expanded[id] = v
	}
	return next
}

// VisibleBooks filters by a case-insensitive substring of the title.
func VisibleBooks(s State) []model.Book {
	term := strings.ToLower(s.Search)
	out := make([]model.Book, 0, len(s.Books))
	for _, b := range s.Books {
		if strings.Contains(strings.ToLower(b.Title), term) {
			out = append(out, b)
		}
	}
	return out
}

func AverageRating(reviews []model.Review) string {
	if len(reviews) == 0 {
		return "No ratings"
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return fmt.Sprintf("%.2f", sum/float64(len(reviews)))
}

// Store serializes dispatches of one session.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{state: New()}
}

func (st *Store) Dispatch(actions ...Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, a := range actions {
		st.state = Reduce(st.state, a)
	}
	return st.state
}

func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}
