package handlers

import (
	"net/http"

	"student-portal/http/response"
	"student-portal/utils"
)

// GetFees returns the fee catalog, optionally filtered with ?category=.
func (h *Handler) GetFees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	fees := h.Store.Fees(r.URL.Query().Get("category"))
	response.SuccessResponse(w, http.StatusOK, "", fees)
}

// GetFeeSummary returns the total/paid/pending aggregation for the summary
// cards.
func (h *Handler) GetFeeSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	response.SuccessResponse(w, http.StatusOK, "", h.Store.Summary())
}

// ToggleSelection flips one fee item in and out of the payment selection.
func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		FeeID string `json:"fee_id"`
	}
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Store.ToggleSelection(req.FeeID); err != nil {
		response.Err(w, err)
		return
	}
	h.writeSelection(w)
}

// SelectAllFees selects every unpaid item matching the category filter, or
// clears the selection if it already holds exactly that set.
func (h *Handler) SelectAllFees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		Category string `json:"category"`
	}
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.Store.SelectAll(req.Category)
	h.writeSelection(w)
}

// GetSelection returns the selected fee ids and their recomputed total.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.writeSelection(w)
}

func (h *Handler) writeSelection(w http.ResponseWriter) {
	response.SuccessResponse(w, http.StatusOK, "", map[string]interface{}{
		"selected": h.Store.Selection(),
		"total":    h.Store.SelectionTotal(),
	})
}
