package handlers

import (
	"net/http"

	"github.com/platewise/v1/internal/application/profile"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
)

// GetProfile handles GET /api/v1/profile
func (h *APIHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.profiles.Get(userID),
	})
}

// UpdateProfile handles PUT /api/v1/profile
func (h *APIHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req profile.UpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated := h.profiles.Update(r.Context(), userID, req)
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    updated,
		Message: "Profile updated",
	})
}
