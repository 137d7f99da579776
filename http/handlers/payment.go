package handlers

import (
	"net/http"

	"student-portal/http/middleware"
	"student-portal/http/response"
	"student-portal/services"
	"student-portal/utils"
)

// Pay runs the payment submission flow for a single fee or the current
// selection. A validation failure leaves everything unchanged and maps to a
// 400 so the dialog stays open with the entered fields intact.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	student, ok := middleware.StudentFrom(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Missing session")
		return
	}

	var req services.PayRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.Payments.Pay(student, req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, "Payment successful", txn)
}
