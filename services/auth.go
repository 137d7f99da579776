package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"student-portal/config"
	"student-portal/errors"
	"student-portal/models"
)

const sessionTTL = 24 * time.Hour

// Demo credentials, matching the seeded profile. There is no identity
// provider behind this portal.
const (
	demoStudentID = "FL2023001"
	demoPassword  = "password"
)

var demoStudent = models.Student{
	ID:        "1",
	Name:      "John Doe",
	Email:     "john.doe@fluniversity.edu",
	StudentID: "FL2023001",
}

// Authenticate checks the submitted credentials and returns a signed session
// token plus the student it identifies. The client keeps the token for the
// session lifetime and sends it as a bearer token.
func Authenticate(studentID, password string) (string, models.Student, error) {
	if studentID != demoStudentID || password != demoPassword {
		return "", models.Student{}, errors.NewUnauthorizedError("invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   demoStudent.StudentID,
		"id":    demoStudent.ID,
		"name":  demoStudent.Name,
		"email": demoStudent.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", models.Student{}, errors.E(errors.Internal, "error signing session token", err)
	}
	return signed, demoStudent, nil
}

// ParseToken verifies a session token and returns the student it carries.
func ParseToken(tokenStr string) (models.Student, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.Student{}, errors.NewUnauthorizedError("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Student{}, errors.NewUnauthorizedError("invalid session token")
	}

	student := models.Student{}
	if v, ok := claims["id"].(string); ok {
		student.ID = v
	}
	if v, ok := claims["name"].(string); ok {
		student.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		student.Email = v
	}
	if v, ok := claims["sub"].(string); ok {
		student.StudentID = v
	}
	if student.StudentID == "" {
		return models.Student{}, errors.NewUnauthorizedError("invalid session token")
	}
	return student, nil
}
