// Package client is the Go consumer of the portfolio API. The public surface
// fetches the site snapshot with a TTL cache and a hardcoded fallback so a
// rendered page is never empty; the admin surface performs the token-gated
// writes the dashboard issues.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotCacheKey = "portfolio:all"

// ErrUnauthorized is returned when the server rejects the stored token or the
// presented credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the portfolio API. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	cache      *gocache.Cache
	cacheTTL   time.Duration
}

// New builds a client for the given base URL. A nil httpClient falls back to
// a default with a request timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	ttl := 5 * time.Minute
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      gocache.New(ttl, 10*time.Minute),
		cacheTTL:   ttl,
	}
}

// SetToken installs a previously issued bearer token, e.g. one persisted by
// the admin dashboard between sessions.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the stored bearer token, empty when logged out.
func (c *Client) Token() string { return c.token }

// Logout discards the stored token. Tokens carry no server-side state, so
// discarding is all logout means.
func (c *Client) Logout() { c.token = "" }

// FetchAll returns the full portfolio snapshot. Successful responses are
// cached for the TTL; on transport or server failure the embedded fallback
// snapshot is returned so callers always have content to render.
func (c *Client) FetchAll(ctx context.Context) Snapshot {
	if cached, found := c.cache.Get(snapshotCacheKey); found {
		if snapshot, ok := cached.(Snapshot); ok {
			return snapshot
		}
	}

	var snapshot Snapshot
	if err := c.getJSON(ctx, "/portfolio/all", &snapshot); err != nil {
		return FallbackSnapshot()
	}

	c.cache.Set(snapshotCacheKey, snapshot, c.cacheTTL)
	return snapshot
}

// Invalidate drops the cached snapshot. Every mutation calls this so the next
// read observes the write.
func (c *Client) Invalidate() {
	c.cache.Delete(snapshotCacheKey)
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (User, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return User{}, err
	}

	c.token = resp.Token
	return resp.User, nil
}

// Verify checks the stored token against the server, returning the claims it
// carries. Used once at dashboard load.
func (c *Client) Verify(ctx context.Context) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// UpsertAbout writes the about section.
func (c *Client) UpsertAbout(ctx context.Context, about About) error {
	if err := c.doJSON(ctx, http.MethodPut, "/portfolio/about", about, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// UpsertContact writes the contact section.
func (c *Client) UpsertContact(ctx context.Context, contact Contact) error {
	if err := c.doJSON(ctx, http.MethodPut, "/portfolio/contact", contact, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// CreateWork adds a work entry and returns its assigned id.
func (c *Client) CreateWork(ctx context.Context, item WorkItem) (uint, error) {
	var resp struct {
		ID uint `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/portfolio/work", item, &resp); err != nil {
		return 0, err
	}
	c.Invalidate()
	return resp.ID, nil
}

// UpdateWork overwrites a work entry.
func (c *Client) UpdateWork(ctx context.Context, id uint, item WorkItem) error {
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/portfolio/work/%d", id), item, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// DeleteWork removes a work entry.
func (c *Client) DeleteWork(ctx context.Context, id uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/portfolio/work/%d", id), nil, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// CreatePublication adds a publication and returns its assigned id.
func (c *Client) CreatePublication(ctx context.Context, item Publication) (uint, error) {
	var resp struct {
		ID uint `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/portfolio/publications", item, &resp); err != nil {
		return 0, err
	}
	c.Invalidate()
	return resp.ID, nil
}

// UpdatePublication overwrites a publication.
func (c *Client) UpdatePublication(ctx context.Context, id uint, item Publication) error {
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/portfolio/publications/%d", id), item, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// DeletePublication removes a publication.
func (c *Client) DeletePublication(ctx context.Context, id uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/portfolio/publications/%d", id), nil, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// UploadImage sends one image as multipart form data and returns the relative
// URL the server stored it under. The caller writes that URL back into an
// image_url field through the normal update flow.
func (c *Client) UploadImage(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/portfolio/upload", body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req, out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
