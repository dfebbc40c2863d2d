package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient] for
// the server at cfg.BaseURL. cfg.Token, when set, is used for
// authenticated requests until Signup, Login or Rotate replace it.
//
// Returns an error if cfg.BaseURL is empty or not a valid URL.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &httpAPIClient{client: client, logger: logger}
	c.SetToken(cfg.Token)
	return c, nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup posts to POST /api/auth/signup and stores the returned token.
func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/auth/signup"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup: %w", err)
	}

	h.SetToken(out.Token)
	return out, nil
}

// Login posts to POST /api/auth/login and stores the returned token.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/auth/login"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.UserView, error) {
	var out models.UserView
	if err := h.do(h.authedRequest(ctx).SetResult(&out), "GET", "/api/auth/me"); err != nil {
		return models.UserView{}, fmt.Errorf("profile: %w", err)
	}
	return out, nil
}

// Logout revokes the stored token and forgets it.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	if err := h.do(h.authedRequest(ctx), "POST", "/api/auth/logout"); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) Rotate(ctx context.Context, req models.RotateRequest) (models.RotateResponse, error) {
	var out models.RotateResponse
	if err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&out), "POST", "/api/auth/tokens/rotate"); err != nil {
		return models.RotateResponse{}, fmt.Errorf("rotate token: %w", err)
	}

	h.logger.Debug().Bool("old_token_revoked", out.OldTokenRevoked).Msg("token rotated")
	h.SetToken(out.Token)
	return out, nil
}

func (h *httpAPIClient) ListTokens(ctx context.Context) (models.TokenListResponse, error) {
	var out models.TokenListResponse
	if err := h.do(h.authedRequest(ctx).SetResult(&out), "GET", "/api/auth/tokens"); err != nil {
		return models.TokenListResponse{}, fmt.Errorf("list tokens: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) Revoke(ctx context.Context, token string) error {
	req := h.authedRequest(ctx).SetBody(models.RevokeTokenRequest{Token: token})
	if err := h.do(req, "POST", "/api/auth/tokens/revoke"); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (h *httpAPIClient) RevokeAll(ctx context.Context) (int64, error) {
	req := h.authedRequest(ctx)
	resp, err := req.Post("/api/auth/tokens/revoke-all")
	if err != nil {
		return 0, fmt.Errorf("revoke all tokens request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("revoke all tokens: %w", err)
	}

	h.SetToken("")
	return gjson.GetBytes(resp.Body(), "revoked").Int(), nil
}

func (h *httpAPIClient) ListTodos(ctx context.Context, query url.Values) (models.Page[models.Todo], error) {
	var out models.Page[models.Todo]
	req := h.authedRequest(ctx).SetQueryParamsFromValues(query).SetResult(&out)
	if err := h.do(req, "GET", "/api/todos"); err != nil {
		return models.Page[models.Todo]{}, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) CreateTodo(ctx context.Context, input models.TodoInput) (models.Todo, error) {
	var out models.Todo
	if err := h.do(h.authedRequest(ctx).SetBody(input).SetResult(&out), "POST", "/api/todos"); err != nil {
		return models.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var out models.Note
	if err := h.do(h.authedRequest(ctx).SetBody(input).SetResult(&out), "POST", "/api/notes"); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	return out, nil
}

// Shorten works without a token too; the link is then anonymous and public.
func (h *httpAPIClient) Shorten(ctx context.Context, input models.URLInput) (models.URL, error) {
	var out models.URL
	if err := h.do(h.authedRequest(ctx).SetBody(input).SetResult(&out), "POST", "/api/urls"); err != nil {
		return models.URL{}, fmt.Errorf("shorten url: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return gjson.GetBytes(resp.Body(), "version").String(), nil
}

// do executes req and maps an error response.
func (h *httpAPIClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	h.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode()).Msg("api call")
	return mapHTTPError(resp)
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
