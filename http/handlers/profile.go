package handlers

import (
	"net/http"

	"student-portal/http/response"
)

// GetProfile returns the full student profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	response.SuccessResponse(w, http.StatusOK, "", h.Store.Profile())
}
