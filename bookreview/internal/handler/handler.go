package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	md "github.com/Astemirdum/bookreview-service/pkg/middleware"
	"github.com/Astemirdum/bookreview-service/pkg/validate"
	_ "github.com/Astemirdum/bookreview-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const bookDeleted = "Book deleted"

type Handler struct {
	bookSvc   BookService
	log       *zap.Logger
	strict    bool
	rateLimit rate.Limit
}

type Option func(h *Handler)

// WithStrictValidation rejects unknown fields and enforces the field rules
// declared on the request models. Otherwise only type coercion applies.
func WithStrictValidation(strict bool) Option {
	return func(h *Handler) { h.strict = strict }
}

func WithRateLimit(rps rate.Limit) Option {
	return func(h *Handler) { h.rateLimit = rps }
}

func New(bookSvc BookService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		bookSvc: bookSvc,
		log:     log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// @title Book Review API
// @version 1.0
// @description Book catalog with embedded reader reviews.
// @BasePath /api

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(md.CORS())

	e.GET("/", h.Root)
	base := e.Group("")
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator(
		validate.WithCustomTypeFunc(model.ValidationValue, model.Int{}, model.Number{}),
	)
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(h.rateLimit),
	)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.POST("/books/:id/reviews", h.AppendReview)

	return e
}

func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Book Review API is running!")
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateBook godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBook true "book fields"
// @Success 201 {object} model.Book
// @Failure 400 {object} model.Message
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBook
	if err := h.bind(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

// ListBooks godoc
// @Summary List all books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Failure 500 {object} model.Message
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.bookSvc.ListBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if books == nil {
		books = []model.Book{}
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.bookSvc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateBook godoc
// @Summary Update the given fields of a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "book id"
// @Param book body model.UpdateBook true "fields to set"
// @Success 200 {object} model.Book
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.UpdateBook
	if err := h.bind(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.mutationError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary Delete a book
// @Description Succeeds also when the book does not exist.
// @Tags books
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.bookSvc.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.Message{Message: bookDeleted})
}

// AppendReview godoc
// @Summary Append a review to a book
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "book id"
// @Param review body model.CreateReview true "review"
// @Success 201 {object} model.Book
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /books/{id}/reviews [post]
func (h *Handler) AppendReview(c echo.Context) error {
	var req model.CreateReview
	if err := h.bind(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.AppendReview(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.mutationError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) mutationError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.log.Error("mutation", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// bind decodes the json body into v. An empty body counts as {}.
func (h *Handler) bind(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		if h.strict {
			dec.DisallowUnknownFields()
		}
		if err = dec.Decode(v); err != nil {
			return err
		}
	}
	if h.strict {
		return c.Validate(v)
	}
	return nil
}
