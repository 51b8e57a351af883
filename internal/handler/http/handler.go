package http

import (
	"net/http"
	"time"

	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/service"
	"github.com/Reznov00/wallet-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Registry

	adminKey       string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *metrics.Registry, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        registry,
		adminKey:       cfg.AdminKey,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// respondError writes err as a JSON error body. status overrides the default
// status of err when non-zero.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status == 0 {
		status = statusFromError(err)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
