package handler

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/Astemirdum/bookreview-service/webui/internal/model"
	"github.com/Astemirdum/bookreview-service/webui/internal/state"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFiles embed.FS

type renderer struct {
	tmpl *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		tmpl: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

type bookView struct {
	model.Book
	Editing       bool
	Expanded      bool
	Draft         model.ReviewDraft
	AverageRating string
}

// Year renders the published year, N/A when unknown or zero.
func (b bookView) Year() string {
	if b.PublishedYear == nil || *b.PublishedYear == 0 {
		return "N/A"
	}
	return strconv.Itoa(*b.PublishedYear)
}

type pageView struct {
	Search    string
	Alert     string
	NewBook   model.BookForm
	EditDraft model.BookForm
	Books     []bookView
}

func newPageView(s state.State) pageView {
	books := state.VisibleBooks(s)
	p := pageView{
		Search:    s.Search,
		Alert:     s.Alert,
		NewBook:   s.NewBook,
		EditDraft: s.EditDraft,
		Books:     make([]bookView, 0, len(books)),
	}
	for _, b := range books {
		p.Books = append(p.Books, bookView{
			Book:          b,
			Editing:       b.ID == s.EditID,
			Expanded:      s.Expanded[b.ID],
			Draft:         s.ReviewDrafts[b.ID],
			AverageRating: state.AverageRating(b.Reviews),
		})
	}
	return p
}
