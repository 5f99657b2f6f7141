package handler

import (
	"github.com/veridict/veridict/internal/handler/http"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
