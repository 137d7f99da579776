package handlers

import (
	"net/http"

	"student-portal/http/response"
	"student-portal/logger"
	"student-portal/services"
	"student-portal/utils"
)

// Login checks the submitted credentials and returns a session token plus
// the student identity for the client to keep.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		StudentID string `json:"student_id"`
		Password  string `json:"password"`
	}
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, student, err := services.Authenticate(req.StudentID, req.Password)
	if err != nil {
		logger.Warn("Failed login attempt for %q", req.StudentID)
		response.Err(w, err)
		return
	}

	logger.Info("Student %s logged in", student.StudentID)
	response.SuccessResponse(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token":   token,
		"student": student,
	})
}

// Logout confirms the logout; the session token lives client-side, so there
// is nothing to revoke server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	response.SuccessResponse(w, http.StatusOK, "Logged out successfully", nil)
}
