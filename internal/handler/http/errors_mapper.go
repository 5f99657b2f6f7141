package http

import (
	"errors"
	"net/http"

	"github.com/veridict/veridict/internal/classifier"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/service"
	"github.com/veridict/veridict/internal/store"
)

// errorStatusMap lists only the sentinels that can actually escape a
// service call; everything else falls through to 500. Lookup-miss and
// persistence failures never reach here: the services fold them into
// ErrInvalidCredentials or degrade them before returning.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:  http.StatusBadRequest,
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	classifier.ErrInferenceFailed: http.StatusBadGateway,
}

// errorMessageMap holds the client-facing detail for errors whose cause is
// safe to disclose. Everything else gets the bare status text.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",
	service.ErrInvalidCredentials:  "Invalid email or password",
	store.ErrEmailAlreadyExists:    "User with this email already exists",
	store.ErrDatabaseUnavailable:   "Database connection failed",
	classifier.ErrInferenceFailed:  "Model inference failed",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError logs err and renders the mapped status code with a safe
// client-facing message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg(logMsg)

	http.Error(w, messageFromError(err, status), status)
}
