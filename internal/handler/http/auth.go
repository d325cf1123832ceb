package http

import (
	"net/http"
	"time"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/metrics"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/models"
)

const sessionCookieName = "session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	user, session, err := h.services.IdentityService.Register(r.Context(), req)
	if err != nil {
		metrics.RecordAuthEvent("register", "failure")
		writeError(w, r, err, "*Handler.register")
		return
	}
	metrics.RecordAuthEvent("register", "success")

	log.Debug().Str("guid", user.GUID).Msg("user registered")

	h.setSession(w, session)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	session, err := h.services.IdentityService.Authenticate(r.Context(), creds)
	if err != nil {
		metrics.RecordAuthEvent("login", "failure")
		writeError(w, r, err, "*Handler.login")
		return
	}
	metrics.RecordAuthEvent("login", "success")

	h.setSession(w, session)
	utils.WriteJSON(w, session, http.StatusOK)
}

// logout only clears the cookie. Session tokens are stateless and stay valid
// until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateLoanLength(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.LoanLengthUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err, "*Handler.updateLoanLength")
		return
	}

	updated, err := h.services.IdentityService.UpdateDefaultLoanLength(r.Context(), user, update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateLoanLength")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// setSession hands the session to the client both as an HttpOnly cookie and
// as an "Authorization" header. It must run before the status is written.
func (h *Handler) setSession(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", "Bearer "+session.Token)
}
