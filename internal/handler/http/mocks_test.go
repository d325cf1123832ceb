package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockIdentityService implements service.IdentityService for unit tests.
// Each method field can be overridden per test case.
type mockIdentityService struct {
	registerFn         func(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error)
	authenticateFn     func(ctx context.Context, creds models.Credentials) (models.Session, error)
	resolveSessionFn   func(ctx context.Context, token string) (models.User, error)
	updateLoanLengthFn func(ctx context.Context, user models.User, update models.LoanLengthUpdate) (models.User, error)
}

func (m *mockIdentityService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error) {
	return m.registerFn(ctx, req)
}

func (m *mockIdentityService) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return m.authenticateFn(ctx, creds)
}

func (m *mockIdentityService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	if m.resolveSessionFn == nil {
		return models.User{}, service.ErrUnauthenticated
	}
	return m.resolveSessionFn(ctx, token)
}

func (m *mockIdentityService) UpdateDefaultLoanLength(ctx context.Context, user models.User, update models.LoanLengthUpdate) (models.User, error) {
	return m.updateLoanLengthFn(ctx, user, update)
}

// mockCatalogService implements service.CatalogService for unit tests.
type mockCatalogService struct {
	addItemFn   func(ctx context.Context, owner *models.User, item models.NewItem) (models.Item, error)
	listItemsFn func(ctx context.Context, owner *models.User) ([]models.Item, error)
}

func (m *mockCatalogService) AddItem(ctx context.Context, owner *models.User, item models.NewItem) (models.Item, error) {
	return m.addItemFn(ctx, owner, item)
}

func (m *mockCatalogService) ListItems(ctx context.Context, owner *models.User) ([]models.Item, error) {
	return m.listItemsFn(ctx, owner)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var alice = models.User{
	UserID:                1,
	GUID:                  "alice-guid",
	Email:                 "a@x.com",
	PasswordHash:          "$2a$04$secret",
	DisplayName:           "Alice",
	DefaultLoanLengthDays: 21,
	IsActive:              true,
}

func newTestHandler(identity service.IdentityService, catalog service.CatalogService) *Handler {
	return NewHandler(&service.Services{
		IdentityService: identity,
		CatalogService:  catalog,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// jsonRequest builds a request with body and, when user is non-nil, the
// authenticated user already in context the way the auth middleware
// leaves it.
func jsonRequest(method, path, body string, user *models.User) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(utils.WithUser(req.Context(), *user))
	}
	return req
}

func intPtr(v int) *int { return &v }
