package handlers

import (
	"net/http"

	"student-portal/http/middleware"
	"student-portal/http/response"
	"student-portal/models"
)

// DashboardSummary is the landing-page overview: headline academic numbers,
// the pending fee total and the notices.
type DashboardSummary struct {
	Student       models.Student        `json:"student"`
	AttendancePct float64               `json:"attendance_percentage"`
	ClassesMissed int                   `json:"classes_missed"`
	CGPA          float64               `json:"cgpa"`
	PendingFees   int64                 `json:"pending_fees"`
	Courses       []models.Course       `json:"courses"`
	Announcements []models.Announcement `json:"announcements"`
}

// GetDashboard assembles the dashboard summary for the current semester.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	student, ok := middleware.StudentFrom(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Missing session")
		return
	}

	summary := DashboardSummary{
		Student:       student,
		CGPA:          h.Store.OverallCGPA(),
		PendingFees:   h.Store.Summary().Pending,
		Courses:       h.Store.Courses(),
		Announcements: h.Store.Announcements(),
	}

	if report, err := h.Store.Attendance("2023-2024", "odd"); err == nil {
		summary.AttendancePct = report.OverallPct
		summary.ClassesMissed = report.TotalClasses - report.TotalPresent
	}

	response.SuccessResponse(w, http.StatusOK, "", summary)
}
