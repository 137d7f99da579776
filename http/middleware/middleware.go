package middleware

import (
	"context"
	"net/http"
	"strings"

	"student-portal/http/response"
	"student-portal/models"
	"student-portal/services"
)

// EnableCORS wraps a handler with permissive CORS headers; the SPA runs on a
// separate dev origin.
func EnableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}

type contextKey string

const studentContextKey contextKey = "student"

// RequireAuth validates the bearer session token and injects the student
// into the request context.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			response.ErrorResponse(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		student, err := services.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			response.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
			return
		}

		next(w, r.WithContext(WithStudent(r.Context(), student)))
	}
}

// WithStudent returns a context carrying the authenticated student.
func WithStudent(ctx context.Context, student models.Student) context.Context {
	return context.WithValue(ctx, studentContextKey, student)
}

// StudentFrom extracts the authenticated student from the request context.
func StudentFrom(ctx context.Context) (models.Student, bool) {
	student, ok := ctx.Value(studentContextKey).(models.Student)
	return student, ok
}
