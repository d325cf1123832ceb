package http

import (
	"time"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/metrics"
	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/models"
)

type Handler struct {
	services *service.Services

	// cookieSecure marks the session cookie Secure.
	cookieSecure bool

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	metrics.Register()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieSecure:   cfg.SessionCookieSecure,
		requestTimeout: cfg.RequestTimeout,
		buildInfo:      models.NewAppBuildInfo("", "", ""),
		logger:         logger,
	}
}

// SetBuildInfo sets what GET /api/version reports. Call it before Init.
func (h *Handler) SetBuildInfo(info models.AppBuildInfo) {
	h.buildInfo = info
}
