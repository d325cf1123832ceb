package http

import (
	"errors"
	"net/http"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrValidation:           http.StatusBadRequest,
	service.ErrDuplicateEmail:       http.StatusConflict,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrReferentialIntegrity: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes it as an
// [utils.ErrorResponse]. Internal errors are logged and never echoed back.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("unexpected error occurred")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
