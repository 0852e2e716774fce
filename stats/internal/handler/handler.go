package handler

import (
	"net/http"

	md "github.com/Astemirdum/bookreview-service/pkg/middleware"
	"github.com/Astemirdum/bookreview-service/stats/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	statsSvc StatsService
	log      *zap.Logger
}

func New(statsSvc StatsService, log *zap.Logger) *Handler {
	return &Handler{
		statsSvc: statsSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(md.CORS())

	base := e.Group("")
	base.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
	)
	api.GET("/stats", h.GetStats)
	api.GET("/stats/:bookId", h.GetBookStats)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetStats(c echo.Context) error {
	stat, err := h.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stat)
}

func (h *Handler) GetBookStats(c echo.Context) error {
	stat, err := h.statsSvc.GetBookStats(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stat)
}
