package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/database"
)

type testServer struct {
	router *gin.Engine
	repo   *content.Repository
	auth   *auth.Service
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		API:      config.APIConfig{Port: 0, Env: "test"},
		Database: config.DatabaseConfig{Path: dsn},
		Auth:     config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1},
		Upload:   config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 * 1024 * 1024},
		CORS:     config.CORSConfig{AllowedOrigins: "*"},
	}

	repo := content.NewRepository(db)
	authService, err := auth.NewService(repo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(cfg, logger)
	RegisterRoutes(router, repo, authService, cfg, logger)

	return &testServer{router: router, repo: repo, auth: authService, cfg: cfg}
}

func (ts *testServer) seedAdmin(t *testing.T) {
	t.Helper()
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := ts.repo.CreateUser(context.Background(), "admin", hash); err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t)

	t.Run("missing fields", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "admin", "password": "nope",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "ghost", "password": "admin123",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("correct credentials", func(t *testing.T) {
		token := ts.login(t)

		w := ts.do(t, http.MethodGet, "/auth/verify", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("verify: expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"username":"admin"`) {
			t.Fatalf("verify body missing user: %s", w.Body.String())
		}
	})
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"garbage token", "not-a-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/auth/verify", tc.header, nil)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestAboutEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t)

	// No content yet: empty object, not 404.
	w := ts.do(t, http.MethodGet, "/portfolio/about", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "{}" {
		t.Fatalf("expected empty object, got %s", w.Body.String())
	}

	about := map[string]string{
		"title":       "Lecturer",
		"subtitle":    "Somewhere",
		"description": "Long bio text",
		"image_url":   "/uploads/x.png",
	}

	// Writes require a token.
	w = ts.do(t, http.MethodPut, "/portfolio/about", "", about)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated write: expected 401, got %d", w.Code)
	}

	token := ts.login(t)
	w = ts.do(t, http.MethodPut, "/portfolio/about", token, about)
	if w.Code != http.StatusOK {
		t.Fatalf("authorized write: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = ts.do(t, http.MethodGet, "/portfolio/about", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got database.About
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode about: %v", err)
	}
	if got.Title != "Lecturer" || got.Description != "Long bio text" {
		t.Fatalf("written fields not read back: %+v", got)
	}

	// Required fields are validated before reaching the store.
	w = ts.do(t, http.MethodPut, "/portfolio/about", token, map[string]string{"subtitle": "only"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing required fields, got %d", w.Code)
	}
}

func TestWorkCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t)
	token := ts.login(t)

	created := map[string]any{
		"title":         "Engineer",
		"company":       "Acme",
		"description":   "Built things",
		"display_order": 1,
	}
	w := ts.do(t, http.MethodPost, "/portfolio/work", token, created)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var createResp struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &createResp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if createResp.ID == 0 {
		t.Fatal("create returned no id")
	}

	w = ts.do(t, http.MethodGet, "/portfolio/work", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var items []database.WorkExperience
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Engineer" {
		t.Fatalf("unexpected list: %+v", items)
	}

	update := map[string]any{
		"title":       "Senior Engineer",
		"company":     "Acme",
		"description": "Built bigger things",
	}
	w = ts.do(t, http.MethodPut, fmt.Sprintf("/portfolio/work/%d", createResp.ID), token, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = ts.do(t, http.MethodPut, "/portfolio/work/abc", token, update)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: expected 400, got %d", w.Code)
	}

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/portfolio/work/%d", createResp.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	// Deleting an already-deleted id is still a success, zero rows touched.
	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/portfolio/work/%d", createResp.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat delete: expected 200, got %d", w.Code)
	}

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/portfolio/work/%d", createResp.ID), "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated delete: expected 401, got %d", w.Code)
	}
}

func TestGetAllBundlesEverySection(t *testing.T) {
	ts := newTestServer(t)
	ts.seedAdmin(t)
	token := ts.login(t)

	w := ts.do(t, http.MethodPut, "/portfolio/contact", token, map[string]string{
		"email":  "me@example.org",
		"github": "https://github.com/me",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("contact write: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = ts.do(t, http.MethodGet, "/portfolio/all", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payload struct {
		About        map[string]any            `json:"about"`
		Work         []database.WorkExperience `json:"work"`
		Publications []database.Publication    `json:"publications"`
		Contact      database.Contact          `json:"contact"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode all: %v", err)
	}
	if len(payload.About) != 0 {
		t.Fatalf("expected empty about, got %+v", payload.About)
	}
	if payload.Work == nil || payload.Publications == nil {
		t.Fatal("lists must be present even when empty")
	}
	if payload.Contact.Email != "me@example.org" {
		t.Fatalf("contact not bundled: %+v", payload.Contact)
	}
}
