package services

import (
	"testing"

	"student-portal/config"
)

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tests := []struct {
		name      string
		studentID string
		password  string
		wantErr   bool
	}{
		{name: "valid credentials", studentID: "FL2023001", password: "password"},
		{name: "wrong password", studentID: "FL2023001", password: "hunter2", wantErr: true},
		{name: "unknown student", studentID: "FL2023999", password: "password", wantErr: true},
		{name: "empty credentials", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, student, err := Authenticate(tt.studentID, tt.password)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Authenticate() = nil error, want failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() error: %v", err)
			}
			if token == "" {
				t.Error("empty session token")
			}
			if student.Name != "John Doe" {
				t.Errorf("student name = %q, want John Doe", student.Name)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, want, err := Authenticate("FL2023001", "password")
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}

	got, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if got != want {
		t.Errorf("ParseToken() = %+v, want %+v", got, want)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	// A token signed with another secret must be rejected.
	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
	config.AppConfig.JWTSecret = "test-secret"
}
