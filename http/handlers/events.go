package handlers

import (
	"fmt"
	"net/http"

	"student-portal/http/response"
	"student-portal/services/events"
)

// GetEventDeadLetters lists events that could not be published to Kafka.
func (h *Handler) GetEventDeadLetters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	letters := events.DeadLetters()
	response.SuccessResponse(w, http.StatusOK, fmt.Sprintf("Retrieved %d dead letters", len(letters)), letters)
}

// Health reports liveness and the Kafka producer state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, "", map[string]interface{}{
		"status":          "ok",
		"kafka_connected": events.IsConnected(),
	})
}
