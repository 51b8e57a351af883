package handler

import (
	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/handler/http"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, registry *metrics.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, registry, cfg, logger),
	}, nil
}
