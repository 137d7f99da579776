package models

import "math"

// SubjectAttendance is one subject's attendance record for a semester.
type SubjectAttendance struct {
	Subject string `json:"subject"`
	Code    string `json:"code"`
	Present int    `json:"present"`
	Total   int    `json:"total"`
}

// Percentage returns the attendance percentage rounded to one decimal.
func (a SubjectAttendance) Percentage() float64 {
	if a.Total == 0 {
		return 0
	}
	return math.Round(float64(a.Present)/float64(a.Total)*1000) / 10
}

// AttendanceReport is the per-semester attendance view with the overall
// percentage computed over all subjects.
type AttendanceReport struct {
	AcademicYear string              `json:"academic_year"`
	Semester     string              `json:"semester"`
	Subjects     []SubjectAttendance `json:"subjects"`
	TotalClasses int                 `json:"total_classes"`
	TotalPresent int                 `json:"total_present"`
	OverallPct   float64             `json:"overall_percentage"`
}

// SubjectGrade is one subject's marks and grade for a semester.
type SubjectGrade struct {
	Subject         string `json:"subject"`
	Code            string `json:"code"`
	InternalMarks   int    `json:"internal_marks"`
	MidtermMarks    int    `json:"midterm_marks"`
	AssignmentMarks int    `json:"assignment_marks"`
	Grade           string `json:"grade"`
	GradePoint      int    `json:"grade_point"`
}

// SemesterGPA is one point on the GPA trend chart.
type SemesterGPA struct {
	Name string  `json:"name"`
	GPA  float64 `json:"gpa"`
}

// Course is an enrolled course with completion progress.
type Course struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Progress int    `json:"progress"`
}

// Announcement is a dashboard notice.
type Announcement struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Message string `json:"message"`
}
