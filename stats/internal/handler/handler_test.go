package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/bookreview-service/stats/internal/errs"
	"github.com/Astemirdum/bookreview-service/stats/internal/handler"
	"github.com/Astemirdum/bookreview-service/stats/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/bookreview-service/stats/internal/handler/mocks"
)

var duneStats = model.BookStats{
	BookID:      "65a1f0c2e4b0a1b2c3d4e5f6",
	Title:       "Dune",
	Reviews:     2,
	AvgRating:   4.5,
	Updates:     1,
	LastUpdated: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

const duneStatsJSON = `{"bookId":"65a1f0c2e4b0a1b2c3d4e5f6","title":"Dune","reviews":2,"avgRating":4.5,"updates":1,"deleted":false,"lastUpdated":"2024-01-02T03:04:05Z"}`

func TestHandler_GetStats(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockStatsService)
	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok. all books",
			target: "/api/v1/stats",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetStats(gomock.Any()).Return(model.StatsInfo{Data: []model.BookStats{duneStats}}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"data":[` + duneStatsJSON + `]}`},
		},
		{
			name:   "err. all books",
			target: "/api/v1/stats",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetStats(gomock.Any()).Return(model.StatsInfo{}, errors.New("db down"))
			},
			response: response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"db down"}`},
		},
		{
			name:   "ok. one book",
			target: "/api/v1/stats/65a1f0c2e4b0a1b2c3d4e5f6",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetBookStats(gomock.Any(), "65a1f0c2e4b0a1b2c3d4e5f6").Return(duneStats, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: duneStatsJSON},
		},
		{
			name:   "err. unknown book",
			target: "/api/v1/stats/nope",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetBookStats(gomock.Any(), "nope").Return(model.BookStats{}, errs.ErrNotFound)
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"stats not found"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockStatsService(c)
			tt.mockBehavior(svc)
			e := handler.New(svc, zap.NewNop()).NewRouter()

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	e := handler.New(nil, zap.NewNop()).NewRouter()
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody).WithContext(context.Background()))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
