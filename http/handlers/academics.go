package handlers

import (
	"net/http"

	"student-portal/http/response"
	"student-portal/models"
)

// GetAttendance returns the attendance report for ?year= and ?semester=,
// defaulting to the current academic year's odd semester.
func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	year := r.URL.Query().Get("year")
	if year == "" {
		year = "2023-2024"
	}
	semester := r.URL.Query().Get("semester")
	if semester == "" {
		semester = "odd"
	}

	report, err := h.Store.Attendance(year, semester)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, "", report)
}

// GetCGPA returns the GPA trend, the subject grades for ?semester= (odd by
// default) with the computed SGPA, and the overall CGPA.
func (h *Handler) GetCGPA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	semester := r.URL.Query().Get("semester")
	if semester == "" {
		semester = "odd"
	}

	grades, err := h.Store.Grades(semester)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, "", map[string]interface{}{
		"semester":      semester,
		"subjects":      grades,
		"sgpa":          computeSGPA(grades),
		"semester_gpas": h.Store.SemesterGPAs(),
		"cgpa":          h.Store.OverallCGPA(),
	})
}

// computeSGPA is the mean grade point over a semester's subjects, rounded to
// two decimals.
func computeSGPA(grades []models.SubjectGrade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum int
	for _, g := range grades {
		sum += g.GradePoint
	}
	return float64(sum*100/len(grades)) / 100
}
