package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salamatlab/internal/adapter/http/handlers/mocks"
	"salamatlab/internal/adapter/http/middleware"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRequestsRouter(h *RequestsHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity(""))
	r.GET("/v1/requests", h.ListRequests)
	return r
}

func TestRequestsHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filter and user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := newRequestsRouter(NewRequestsHandler(uc))

		uc.EXPECT().List(gomock.Any(), "u1", usecase.DashboardFilter{Type: "checkup", Status: "pending", Query: "قلب"}).
			Return([]usecase.DashboardEntry{
				{RequestRecord: entities.RequestRecord{ID: "r1", Type: entities.RequestTypeCheckup, Status: entities.RequestStatusPending}},
				{RequestRecord: entities.RequestRecord{ID: "sample-checkup-1", Type: entities.RequestTypeCheckup}, Sample: true},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?type=checkup&status=pending&q=%D9%82%D9%84%D8%A8", nil)
		req.Header.Set(middleware.HeaderUserID, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Count int `json:"count"`
			Items []struct {
				ID     string `json:"id"`
				Sample bool   `json:"sample"`
			} `json:"items"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Count != 2 || body.Items[0].ID != "r1" || !body.Items[1].Sample {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid type filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := newRequestsRouter(NewRequestsHandler(uc))

		uc.EXPECT().List(gomock.Any(), "u1", gomock.Any()).Return(nil, usecase.ErrInvalidRequestTypeFilter)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?type=dental", nil)
		req.Header.Set(middleware.HeaderUserID, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := newRequestsRouter(NewRequestsHandler(uc))

		uc.EXPECT().List(gomock.Any(), "u1", gomock.Any()).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		req.Header.Set(middleware.HeaderUserID, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRequestsRouter(NewRequestsHandler(mocks.NewMockIDashboardUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/requests", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
