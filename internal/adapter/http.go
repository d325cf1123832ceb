package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/models"
)

type httpLibraryAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPLibraryAdapter constructs an HTTP/REST implementation of
// [LibraryAdapter]. The base URL from adapterCfg.HTTPAddress is normalised
// ("localhost:5000" becomes "http://localhost:5000").
//
// Returns an error if adapterCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPLibraryAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (LibraryAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpLibraryAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

// SetToken implements [LibraryAdapter]. The token is whitespace-trimmed.
func (h *httpLibraryAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [LibraryAdapter].
func (h *httpLibraryAdapter) Token() string {
	return h.token
}

// Register implements [LibraryAdapter]. It POSTs to /api/user/register and
// stores the session token from the Authorization response header.
func (h *httpLibraryAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Login implements [LibraryAdapter]. It POSTs to /api/user/login and stores
// the session token from the Authorization response header.
func (h *httpLibraryAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&session).
		Post("/api/user/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	session.Token = h.Token()
	return session, nil
}

// Me implements [LibraryAdapter]. GET /api/user/me.
func (h *httpLibraryAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SetDefaultLoanLength implements [LibraryAdapter]. PUT /api/user/loan-length.
func (h *httpLibraryAdapter) SetDefaultLoanLength(ctx context.Context, days int) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoanLengthUpdate{DefaultLoanLengthDays: days}).
		SetResult(&user).
		Put("/api/user/loan-length")
	if err != nil {
		return models.User{}, fmt.Errorf("set loan length request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddItem implements [LibraryAdapter]. POST /api/items.
func (h *httpLibraryAdapter) AddItem(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	var item models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newItem).
		SetResult(&item).
		Post("/api/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("add item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// ListItems implements [LibraryAdapter]. GET /api/items.
func (h *httpLibraryAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	var list models.ItemList

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Items == nil {
		return []models.Item{}, nil
	}
	return list.Items, nil
}

func (h *httpLibraryAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpLibraryAdapter) storeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	h.SetToken(token)
	return nil
}
