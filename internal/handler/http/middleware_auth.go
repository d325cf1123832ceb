package http

import (
	"errors"
	"net/http"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/metrics"
	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/internal/utils"
)

// auth is an HTTP middleware that resolves the request's session.
//
// The token is read from the "session" cookie, falling back to an
// "Authorization: Bearer <token>" header. It is resolved through
// [service.IdentityService.ResolveSession] and on success the user is stored
// in the request context via [utils.WithUser].
//
// Requests without a session, or whose session does not resolve, are
// rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.IdentityService.ResolveSession(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				metrics.RecordAuthEvent("resolve", "failure")
				log.Debug().Err(err).Msg("session did not resolve")
				utils.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during session resolution")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// tokenFromRequest returns the session token carried by r. The cookie wins
// over the header when both are present.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSession
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
