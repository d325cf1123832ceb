package http

import (
	"net/http"

	"github.com/Tristano1/friend-library-system/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Version: h.buildInfo.BuildVersion(),
		Commit:  h.buildInfo.BuildCommit(),
		Date:    h.buildInfo.BuildDate(),
	}, http.StatusOK)
}
