package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newSnapshotServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portfolio/all", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Snapshot{
			About: About{Title: "Live Title", Description: "live"},
			Work:  []WorkItem{{ID: 1, Title: "Job", Company: "Acme"}},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchAllReturnsFallbackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // unreachable from here on

	c := New(server.URL, nil)
	snapshot := c.FetchAll(context.Background())

	want := FallbackSnapshot()
	if snapshot.About.Title != want.About.Title {
		t.Fatalf("expected fallback about, got %+v", snapshot.About)
	}
	if len(snapshot.Work) != len(want.Work) {
		t.Fatalf("expected fallback work list, got %d items", len(snapshot.Work))
	}
}

func TestFetchAllReturnsFallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := New(server.URL, nil)
	snapshot := c.FetchAll(context.Background())
	if snapshot.About.Title != FallbackSnapshot().About.Title {
		t.Fatalf("expected fallback, got %+v", snapshot.About)
	}
}

func TestFetchAllCachesUntilInvalidated(t *testing.T) {
	var hits atomic.Int64
	server := newSnapshotServer(t, &hits)

	c := New(server.URL, nil)
	ctx := context.Background()

	first := c.FetchAll(ctx)
	if first.About.Title != "Live Title" {
		t.Fatalf("unexpected snapshot: %+v", first.About)
	}
	_ = c.FetchAll(ctx)
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", got)
	}

	c.Invalidate()
	_ = c.FetchAll(ctx)
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected refetch after invalidation, got %d", got)
	}
}

func TestFallbackIsNeverCached(t *testing.T) {
	var hits atomic.Int64
	server := newSnapshotServer(t, &hits)

	broken := New("http://127.0.0.1:1", nil)
	_ = broken.FetchAll(context.Background())

	// A client pointed at a live server must not be poisoned by a prior
	// fallback; each client has its own cache, so verify the failing client
	// retries upstream rather than serving a cached fallback.
	_ = broken.FetchAll(context.Background())

	live := New(server.URL, nil)
	snapshot := live.FetchAll(context.Background())
	if snapshot.About.Title != "Live Title" {
		t.Fatalf("live fetch returned %+v", snapshot.About)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected exactly 1 live fetch, got %d", hits.Load())
	}
}

func TestLoginStoresTokenAndAuthorizesWrites(t *testing.T) {
	var sawAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "admin123" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "issued-token",
			"user":    User{ID: 1, Username: "admin"},
		})
	})
	mux.HandleFunc("PUT /portfolio/about", func(w http.ResponseWriter, r *http.Request) {
		sawAuth.Store(r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := New(server.URL, nil)

	if _, err := c.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if c.Token() != "" {
		t.Fatal("failed login must not store a token")
	}

	user, err := c.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "admin" || c.Token() != "issued-token" {
		t.Fatalf("login state wrong: user=%+v token=%q", user, c.Token())
	}

	if err := c.UpsertAbout(context.Background(), About{Title: "t", Description: "d"}); err != nil {
		t.Fatalf("upsert about: %v", err)
	}
	if got, _ := sawAuth.Load().(string); got != "Bearer issued-token" {
		t.Fatalf("write sent wrong Authorization header: %q", got)
	}

	c.Logout()
	if c.Token() != "" {
		t.Fatal("logout must discard the token")
	}
}

func TestMutationsInvalidateSnapshotCache(t *testing.T) {
	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portfolio/all", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(Snapshot{About: About{Title: "v"}})
	})
	mux.HandleFunc("POST /portfolio/work", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": 7})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := New(server.URL, nil)
	ctx := context.Background()

	_ = c.FetchAll(ctx)
	_ = c.FetchAll(ctx)
	if hits.Load() != 1 {
		t.Fatalf("expected cached reads, got %d fetches", hits.Load())
	}

	id, err := c.CreateWork(ctx, WorkItem{Title: "t", Company: "c", Description: "d"})
	if err != nil {
		t.Fatalf("create work: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}

	_ = c.FetchAll(ctx)
	if hits.Load() != 2 {
		t.Fatalf("mutation must invalidate the cache, got %d fetches", hits.Load())
	}
}

func TestUploadImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /portfolio/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			http.Error(w, `{"error":"no file uploaded"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		if header.Filename != "pic.png" || !bytes.Equal(content, []byte("png-bytes")) {
			http.Error(w, `{"error":"unexpected upload"}`, http.StatusBadRequest)
			return
		}
		if header.Header.Get("Content-Type") != "image/png" {
			http.Error(w, `{"error":"wrong content type"}`, http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "url": "/uploads/123-pic.png"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := New(server.URL, nil)
	c.SetToken("tkn")

	url, err := c.UploadImage(context.Background(), "pic.png", "image/png", bytes.NewReader([]byte("png-bytes")))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/uploads/123-pic.png" {
		t.Fatalf("unexpected url: %s", url)
	}
}
