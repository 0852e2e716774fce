package handler

import (
	"context"
	"net/http"
	"time"

	md "github.com/Astemirdum/bookreview-service/pkg/middleware"
	"github.com/Astemirdum/bookreview-service/webui/internal/model"
	"github.com/Astemirdum/bookreview-service/webui/internal/state"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const sessionCookie = "bookreview_session"

type Handler struct {
	api            BookAPI
	log            *zap.Logger
	replaceReviews bool

	sessionTTL  time.Duration
	maxSessions int
	sessions    *sessions
}

type Option func(h *Handler)

// WithReplaceReviews submits a review by reading the book and writing it
// back whole instead of appending on the server.
func WithReplaceReviews(replace bool) Option {
	return func(h *Handler) { h.replaceReviews = replace }
}

// WithSessionTTL drops a browser session after it has been idle for ttl.
func WithSessionTTL(ttl time.Duration) Option {
	return func(h *Handler) { h.sessionTTL = ttl }
}

// WithMaxSessions caps the number of live browser sessions.
func WithMaxSessions(n int) Option {
	return func(h *Handler) { h.maxSessions = n }
}

func New(api BookAPI, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		api: api,
		log: log.Named("webui"),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.sessions = newSessions(h.sessionTTL, h.maxSessions)
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newRenderer()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)))

	e.GET("/manage/health", h.Health)
	e.GET("/", h.Index)
	books := e.Group("/books")
	books.POST("", h.CreateBook)
	books.POST("/:id/edit", h.StartEdit)
	books.POST("/:id/save", h.SaveEdit)
	books.POST("/:id/cancel", h.CancelEdit)
	books.POST("/:id/delete", h.DeleteBook)
	books.POST("/:id/toggle", h.ToggleShowMore)
	books.POST("/:id/reviews", h.SubmitReview)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index fetches the list and renders the page. A visitor without a
// session gets a throwaway store; one is kept only once they change
// something. An alert is shown once.
func (h *Handler) Index(c echo.Context) error {
	st, ok := h.existingSession(c)
	if !ok {
		st = state.NewStore()
	}
	h.refresh(c.Request().Context(), st)
	if term, ok := c.QueryParams()["search"]; ok && len(term) > 0 {
		st.Dispatch(state.SearchChanged{Term: term[0]})
	}
	s := st.State()
	if s.Alert != "" {
		st.Dispatch(state.AlertDismissed{})
	}
	return c.Render(http.StatusOK, "index.html", newPageView(s))
}

func (h *Handler) CreateBook(c echo.Context) error {
	st := h.session(c)
	var form model.BookForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st.Dispatch(state.NewBookChanged{Form: form})

	ctx := c.Request().Context()
	if _, err := h.api.CreateBook(ctx, form); err != nil {
		h.log.Error("Error adding book", zap.Error(err))
		return h.home(c)
	}
	st.Dispatch(state.BookCreated{})
	h.refresh(ctx, st)
	return h.home(c)
}

func (h *Handler) StartEdit(c echo.Context) error {
	st := h.session(c)
	if st.State().Books == nil {
		h.refresh(c.Request().Context(), st)
	}
	id := c.Param("id")
	for _, b := range st.State().Books {
		if b.ID == id {
			st.Dispatch(state.EditStarted{Book: b})
			break
		}
	}
	return h.home(c)
}

func (h *Handler) SaveEdit(c echo.Context) error {
	st := h.session(c)
	var form model.BookForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st.Dispatch(state.EditChanged{Form: form})

	ctx := c.Request().Context()
	if _, err := h.api.UpdateBook(ctx, c.Param("id"), form); err != nil {
		h.log.Error("Error updating book", zap.Error(err))
		return h.home(c)
	}
	st.Dispatch(state.EditFinished{})
	h.refresh(ctx, st)
	return h.home(c)
}

func (h *Handler) CancelEdit(c echo.Context) error {
	st := h.session(c)
	st.Dispatch(state.EditFinished{})
	return h.home(c)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	st := h.session(c)
	ctx := c.Request().Context()
	if err := h.api.DeleteBook(ctx, c.Param("id")); err != nil {
		h.log.Error("Error deleting book", zap.Error(err))
		return h.home(c)
	}
	h.refresh(ctx, st)
	return h.home(c)
}

func (h *Handler) ToggleShowMore(c echo.Context) error {
	st := h.session(c)
	st.Dispatch(state.ShowMoreToggled{BookID: c.Param("id")})
	return h.home(c)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	st := h.session(c)
	id := c.Param("id")
	var draft model.ReviewDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st.Dispatch(state.ReviewDraftChanged{BookID: id, Draft: draft})

	review, ok := draft.Review()
	if !ok {
		st.Dispatch(state.ReviewRejected{BookID: id})
		return h.home(c)
	}
	ctx := c.Request().Context()
	if err := h.appendReview(ctx, id, review); err != nil {
		h.log.Error("Error submitting review", zap.Error(err))
		return h.home(c)
	}
	st.Dispatch(state.ReviewSubmitted{BookID: id})
	h.refresh(ctx, st)
	return h.home(c)
}

func (h *Handler) appendReview(ctx context.Context, id string, review model.Review) error {
	if !h.replaceReviews {
		_, err := h.api.AppendReview(ctx, id, review)
		return err
	}
	book, err := h.api.GetBook(ctx, id)
	if err != nil {
		return err
	}
	book.Reviews = append(book.Reviews, review)
	_, err = h.api.UpdateBook(ctx, id, book)
	return err
}

// refresh replaces the list. On failure the state is left as it was.
func (h *Handler) refresh(ctx context.Context, st *state.Store) {
	books, err := h.api.ListBooks(ctx)
	if err != nil {
		h.log.Error("Error fetching books", zap.Error(err))
		return
	}
	st.Dispatch(state.BooksLoaded{Books: books})
}

func (h *Handler) home(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) existingSession(c echo.Context) (*state.Store, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return h.sessions.get(cookie.Value)
}

// session returns the caller's store, starting a new session if the cookie
// is missing or has expired.
func (h *Handler) session(c echo.Context) *state.Store {
	if st, ok := h.existingSession(c); ok {
		return st
	}
	id, st := h.sessions.create()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st
}
