package models

// Student is the authenticated portal identity carried in the session token.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
}

// StudentProfile carries the full profile page fields.
type StudentProfile struct {
	Student
	DateOfBirth  string `json:"date_of_birth"`
	Age          int    `json:"age"`
	Phone        string `json:"phone"`
	AadharNumber string `json:"aadhar_number"`
	MotherTongue string `json:"mother_tongue"`
	BirthPlace   string `json:"birth_place"`
	Address      string `json:"address"`
	Program      string `json:"program"`
	Batch        string `json:"batch"`
	BloodGroup   string `json:"blood_group"`
	Gender       string `json:"gender"`
}
