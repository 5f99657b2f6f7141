package http

import (
	"encoding/json"
	"net/http"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/utils"
	"github.com/veridict/veridict/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "user signup failed")
		return
	}

	log.Debug().Str("id", createdUser.ID).Str("email", createdUser.Email).Msg("user signed up")

	response := models.SignupResponse{
		Profile: models.ProfileOf(createdUser),
		Session: models.Session{User: models.SessionUser{ID: createdUser.ID}},
	}
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.ProfileOf(foundUser), http.StatusOK)
}

// logout is a stateless acknowledgement: no token is issued at login, so
// there is no server-side session to tear down.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

// currentUser resolves the userId query parameter to a profile. A missing or
// unknown id renders a JSON null body rather than an error status.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")

	profile, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("current user lookup failed")
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	if profile == nil {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
