package store

import (
	"time"

	"student-portal/models"
)

// seed loads the demo fixtures: the 2023-2024 fee catalog, past payment
// history and the academic records shown on the dashboard, attendance and
// CGPA pages.
func (s *Store) seed() {
	s.fees = []models.FeeItem{
		{ID: "fee-1", Type: "Tuition Fee", Amount: 45000, DueDate: "September 30, 2023", Status: models.FeeStatusPending, Category: models.CategoryTuition},
		{ID: "fee-2", Type: "Library Fee", Amount: 2000, DueDate: "September 30, 2023", Status: models.FeeStatusPaid, Category: models.CategoryOther},
		{ID: "fee-3", Type: "Laboratory Fee", Amount: 5000, DueDate: "September 30, 2023", Status: models.FeeStatusPending, Category: models.CategoryOther},
		{ID: "fee-4", Type: "Transportation Fee", Amount: 8000, DueDate: "October 15, 2023", Status: models.FeeStatusPending, Category: models.CategoryTransport},
		{ID: "fee-5", Type: "Examination Fee", Amount: 3500, DueDate: "November 10, 2023", Status: models.FeeStatusPending, Category: models.CategoryOther},
		{ID: "fee-6", Type: "Sports Fee", Amount: 1500, DueDate: "October 15, 2023", Status: models.FeeStatusPending, Category: models.CategorySports},
		{ID: "fee-7", Type: "Certification Fee", Amount: 2500, DueDate: "August 20, 2023", Status: models.FeeStatusOverdue, Category: models.CategoryCertification},
	}

	s.transactions = []models.Transaction{
		{ID: "trans-1", Date: time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC), Amount: 2000, Description: "Library Fee", PaymentMethod: "Net Banking", TransactionID: "TXN123456789"},
		{ID: "trans-2", Date: time.Date(2023, time.July, 20, 0, 0, 0, 0, time.UTC), Amount: 45000, Description: "Tuition Fee (Previous Semester)", PaymentMethod: "Credit Card", TransactionID: "TXN987654321"},
		{ID: "trans-3", Date: time.Date(2023, time.July, 20, 0, 0, 0, 0, time.UTC), Amount: 5000, Description: "Laboratory Fee (Previous Semester)", PaymentMethod: "Credit Card", TransactionID: "TXN987654322"},
	}

	s.attendance = map[string]map[string][]models.SubjectAttendance{
		"2023-2024": {
			"odd": {
				{Subject: "Data Structures and Algorithms", Code: "CS301", Present: 35, Total: 40},
				{Subject: "Database Management Systems", Code: "CS302", Present: 32, Total: 38},
				{Subject: "Computer Networks", Code: "CS303", Present: 30, Total: 36},
				{Subject: "Operating Systems", Code: "CS304", Present: 28, Total: 32},
			},
			"even": {
				{Subject: "Artificial Intelligence", Code: "CS401", Present: 22, Total: 26},
				{Subject: "Web Technologies", Code: "CS402", Present: 24, Total: 28},
				{Subject: "Software Engineering", Code: "CS403", Present: 18, Total: 20},
				{Subject: "Computer Graphics", Code: "CS404", Present: 26, Total: 30},
			},
		},
		"2022-2023": {
			"odd": {
				{Subject: "Discrete Mathematics", Code: "CS201", Present: 34, Total: 38},
				{Subject: "Data Communication", Code: "CS202", Present: 30, Total: 36},
				{Subject: "Digital Logic Design", Code: "CS203", Present: 32, Total: 35},
				{Subject: "Object Oriented Programming", Code: "CS204", Present: 28, Total: 32},
			},
			"even": {
				{Subject: "Computer Architecture", Code: "CS205", Present: 30, Total: 32},
				{Subject: "Algorithm Design", Code: "CS206", Present: 28, Total: 34},
				{Subject: "Probability and Statistics", Code: "CS207", Present: 26, Total: 30},
				{Subject: "System Programming", Code: "CS208", Present: 25, Total: 28},
			},
		},
	}

	s.grades = map[string][]models.SubjectGrade{
		"odd": {
			{Subject: "Data Structures and Algorithms", Code: "CS301", InternalMarks: 28, MidtermMarks: 40, AssignmentMarks: 18, Grade: "A", GradePoint: 9},
			{Subject: "Database Management Systems", Code: "CS302", InternalMarks: 26, MidtermMarks: 38, AssignmentMarks: 19, Grade: "A", GradePoint: 9},
			{Subject: "Computer Networks", Code: "CS303", InternalMarks: 22, MidtermMarks: 35, AssignmentMarks: 16, Grade: "B+", GradePoint: 8},
			{Subject: "Operating Systems", Code: "CS304", InternalMarks: 27, MidtermMarks: 42, AssignmentMarks: 18, Grade: "A+", GradePoint: 10},
		},
		"even": {
			{Subject: "Artificial Intelligence", Code: "CS401", InternalMarks: 25, MidtermMarks: 38, AssignmentMarks: 17, Grade: "A", GradePoint: 9},
			{Subject: "Web Technologies", Code: "CS402", InternalMarks: 28, MidtermMarks: 43, AssignmentMarks: 19, Grade: "A+", GradePoint: 10},
			{Subject: "Software Engineering", Code: "CS403", InternalMarks: 24, MidtermMarks: 36, AssignmentMarks: 16, Grade: "B+", GradePoint: 8},
			{Subject: "Computer Graphics", Code: "CS404", InternalMarks: 26, MidtermMarks: 40, AssignmentMarks: 18, Grade: "A", GradePoint: 9},
		},
	}

	s.semesterGPAs = []models.SemesterGPA{
		{Name: "Sem 1", GPA: 8.2},
		{Name: "Sem 2", GPA: 8.4},
		{Name: "Sem 3", GPA: 8.7},
		{Name: "Sem 4", GPA: 8.5},
		{Name: "Sem 5", GPA: 8.9},
		{Name: "Sem 6", GPA: 9.1},
	}
	s.cgpa = 8.7

	s.courses = []models.Course{
		{Name: "Data Structures and Algorithms", Code: "CS301", Progress: 65},
		{Name: "Database Management Systems", Code: "CS302", Progress: 80},
		{Name: "Computer Networks", Code: "CS303", Progress: 45},
		{Name: "Operating Systems", Code: "CS304", Progress: 70},
	}

	s.announcements = []models.Announcement{
		{ID: 1, Title: "Mid-Semester Examinations", Date: "October 15, 2023", Message: "Mid-semester examinations will commence from October 15, 2023."},
		{ID: 2, Title: "Fee Payment Deadline", Date: "September 30, 2023", Message: "Last date for payment of tuition fees is September 30, 2023."},
		{ID: 3, Title: "Annual Sports Meet", Date: "November 5, 2023", Message: "Annual sports meet will be held on November 5, 2023."},
	}

	s.profile = models.StudentProfile{
		Student: models.Student{
			ID:        "1",
			Name:      "John Doe",
			Email:     "john.doe@fluniversity.edu",
			StudentID: "FL2023001",
		},
		DateOfBirth:  "15-08-2002",
		Age:          22,
		Phone:        "9876543210",
		AadharNumber: "XXXX XXXX 1234",
		MotherTongue: "English",
		BirthPlace:   "Bangalore",
		Address:      "123 University St, Bangalore, Karnataka, 560001",
		Program:      "B.Tech Computer Science",
		Batch:        "2022-2026",
		BloodGroup:   "O+",
		Gender:       "Male",
	}
}
