package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salamatlab/internal/adapter/http/middleware"
	"salamatlab/internal/adapter/persistence/kvstore"
	"salamatlab/internal/config"
	mock_interfaces "salamatlab/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter() *gin.Engine {
	cfg := config.Config{
		Submission: config.SubmissionConfig{Delay: 0},
		Session:    config.SessionConfig{TTL: time.Minute},
		Dashboard:  config.DashboardConfig{IncludeSamples: true},
	}
	return NewRouter(cfg, BuildDependencies(cfg, kvstore.NewMemoryStore()))
}

func serve(r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter()

	for _, path := range []string{"/v1/ping", "/v1/health", "/v1/catalog/categories", "/v1/catalog/time-slots", "/v1/catalog/sampling-packages"} {
		if w := serve(r, http.MethodGet, path, "", ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
	if w := serve(r, http.MethodGet, "/v1/requests", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected /v1/requests to require identity, got %d", w.Code)
	}
}

func TestRouter_HealthHidesStoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIKeyValueStore(ctrl)
	store.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp db.internal:5432: password=hunter2 refused"))

	cfg := config.Config{Session: config.SessionConfig{TTL: time.Minute}}
	r := NewRouter(cfg, BuildDependencies(cfg, store))

	w := serve(r, http.MethodGet, "/v1/health", "", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "db.internal") || strings.Contains(w.Body.String(), "hunter2") {
		t.Fatalf("health response leaks store error: %s", w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body["status"] != "unavailable" {
		t.Fatalf("unexpected body %s (err=%v)", w.Body.String(), err)
	}
}

func TestRouter_SamplingFlowReachesDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter()

	w := serve(r, http.MethodPost, "/v1/intake/sessions", "u1", `{"profile":{"first_name":"سارا","last_name":"احمدی","phone":"09120000000","national_id":"0011223344","city":"تهران","addresses":[{"id":"a1","address":"تهران، شهرقدس، خیابان شهید بهشتی، پلاک ۱۲۳","is_default":true}]}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var session struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &session)
	base := "/v1/intake/sessions/" + session.ID

	steps := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPut, base + "/flow", `{"flow":"sampling"}`, http.StatusOK},
		{http.MethodPost, base + "/flows/sampling/package", `{"package_id":"0"}`, http.StatusOK},
		{http.MethodPost, base + "/flows/sampling/next", "", http.StatusOK},
		{http.MethodPost, base + "/request", "", http.StatusCreated},
	}
	for _, s := range steps {
		if w := serve(r, s.method, s.path, "u1", s.body); w.Code != s.want {
			t.Fatalf("%s %s: expected %d, got %d: %s", s.method, s.path, s.want, w.Code, w.Body.String())
		}
	}

	w = serve(r, http.MethodGet, "/v1/requests?type=sampling", "u1", "")
	var dash struct {
		Items []struct {
			Type   string            `json:"type"`
			Sample bool              `json:"sample"`
			Fields map[string]string `json:"fields"`
		} `json:"items"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &dash)
	if w.Code != http.StatusOK || len(dash.Items) != 2 {
		t.Fatalf("expected own record plus sample, got %d: %s", w.Code, w.Body.String())
	}
	if dash.Items[0].Sample || dash.Items[0].Fields["neighborhood"] != "شهرقدس" || dash.Items[0].Fields["plaque"] != "۱۲۳" {
		t.Fatalf("unexpected first item: %+v", dash.Items[0])
	}

	w = serve(r, http.MethodGet, "/v1/requests?type=sampling", "u2", "")
	_ = json.Unmarshal(w.Body.Bytes(), &dash)
	if len(dash.Items) != 1 || !dash.Items[0].Sample {
		t.Fatalf("expected u2 to only see the sample, got %s", w.Body.String())
	}
}
