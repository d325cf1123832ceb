package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/models"
)

const validToken = "valid.session.token"

func resolvingIdentity() *mockIdentityService {
	return &mockIdentityService{
		resolveSessionFn: func(_ context.Context, token string) (models.User, error) {
			if token == validToken {
				return alice, nil
			}
			return models.User{}, service.ErrUnauthenticated
		},
	}
}

// runAuth passes req through the auth middleware and reports the user the
// next handler saw, if it was called at all.
func runAuth(h *Handler, req *http.Request) (*httptest.ResponseRecorder, *models.User) {
	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			seen = &user
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		header     string
		wantStatus int
		wantUser   bool
	}{
		{name: "bearer header", header: "Bearer " + validToken, wantStatus: http.StatusOK, wantUser: true},
		{name: "lower-case scheme", header: "bearer " + validToken, wantStatus: http.StatusOK, wantUser: true},
		{name: "session cookie", cookie: validToken, wantStatus: http.StatusOK, wantUser: true},
		{name: "cookie wins over header", cookie: validToken, header: "Bearer nope", wantStatus: http.StatusOK, wantUser: true},
		{name: "nothing", wantStatus: http.StatusUnauthorized},
		{name: "no scheme", header: validToken, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "unknown cookie", cookie: "forged", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(resolvingIdentity(), nil)

			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec, user := runAuth(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, alice.GUID, user.GUID)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestAuth_ResolveFailureIsInternal(t *testing.T) {
	identity := &mockIdentityService{
		resolveSessionFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newTestHandler(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)

	rec, user := runAuth(h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, user)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := tokenFromRequest(req)
	assert.ErrorIs(t, err, ErrNoSession)

	req.Header.Set("Authorization", "Token abc")
	_, err = tokenFromRequest(req)
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	req.Header.Set("Authorization", "Bearer abc")
	token, err := tokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}
