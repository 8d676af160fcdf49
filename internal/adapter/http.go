package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/vaultward/vaultward/internal/config"
	"github.com/vaultward/vaultward/internal/logger"
	"github.com/vaultward/vaultward/internal/utils"
	"github.com/vaultward/vaultward/models"
)

// sessionPaths is the ordered fallback chain for session creation. The
// chain exists to tolerate backend API evolution: newer servers answer on
// the versioned /auth/session path, older deployments on the legacy
// /auth/login shape, and the oldest on the same paths without the version
// prefix. The order is fixed; probing stops at the first non-404 answer.
var sessionPaths = []string{
	"/api/v1/auth/session",
	"/api/v1/auth/login",
	"/auth/session",
	"/auth/login",
}

// healthPaths are probed in order by Health.
var healthPaths = []string{"/health", "/auth/health"}

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu          sync.RWMutex
	token       string
	sessionPath string // resolved fallback shape, cached for the process lifetime
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// CreateSession implements [ServerAdapter].
func (h *httpServerAdapter) CreateSession(ctx context.Context, req models.SessionRequest) (models.SessionResponse, error) {
	if path := h.resolvedSessionPath(); path != "" {
		return h.createSessionAt(ctx, path, req)
	}

	for _, path := range sessionPaths {
		resp, err := h.postSession(ctx, path, req)
		if err != nil {
			return models.SessionResponse{}, err
		}
		if resp.StatusCode() == http.StatusNotFound {
			continue
		}

		h.cacheSessionPath(path)
		return decodeSessionResponse(resp)
	}

	return models.SessionResponse{}, fmt.Errorf("no session endpoint answered: %w", ErrNotFound)
}

func (h *httpServerAdapter) createSessionAt(ctx context.Context, path string, req models.SessionRequest) (models.SessionResponse, error) {
	resp, err := h.postSession(ctx, path, req)
	if err != nil {
		return models.SessionResponse{}, err
	}
	return decodeSessionResponse(resp)
}

func (h *httpServerAdapter) postSession(ctx context.Context, path string, req models.SessionRequest) (*resty.Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("create session request: %w: %w", ErrTransport, err)
	}
	return resp, nil
}

func decodeSessionResponse(resp *resty.Response) (models.SessionResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	var sr models.SessionResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SessionResponse{}, fmt.Errorf("decode session response: %w", err)
	}
	if sr.SessionToken == "" {
		return models.SessionResponse{}, errors.New("session response carries no token")
	}

	return sr, nil
}

func (h *httpServerAdapter) resolvedSessionPath() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessionPath
}

func (h *httpServerAdapter) cacheSessionPath(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessionPath != path {
		h.logger.Debug().Str("path", path).Msg("session endpoint resolved")
		h.sessionPath = path
	}
}

// GetVault implements [ServerAdapter].
func (h *httpServerAdapter) GetVault(ctx context.Context) (models.VaultResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/vault/")
	if err != nil {
		return models.VaultResponse{}, fmt.Errorf("get vault request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultResponse{}, err
	}

	var vr models.VaultResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.VaultResponse{}, fmt.Errorf("decode vault response: %w", err)
	}

	return vr, nil
}

// UpdateVault implements [ServerAdapter].
func (h *httpServerAdapter) UpdateVault(ctx context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/v1/vault/")
	if err != nil {
		return models.VaultUpdateResponse{}, fmt.Errorf("update vault request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultUpdateResponse{}, err
	}

	var ur models.VaultUpdateResponse
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &ur); err != nil {
			return models.VaultUpdateResponse{}, fmt.Errorf("decode vault update response: %w", err)
		}
	}

	return ur, nil
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/change-password")
	if err != nil {
		return fmt.Errorf("change password request: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/v1/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	var lastErr error
	for _, path := range healthPaths {
		resp, err := h.client.R().SetContext(ctx).Get(path)
		if err != nil {
			return fmt.Errorf("health request: %w: %w", ErrTransport, err)
		}
		lastErr = mapHTTPError(resp)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, ErrNotFound) {
			return lastErr
		}
	}
	return lastErr
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
