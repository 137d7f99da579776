package http

import (
	"net/http"

	"student-portal/http/handlers"
	"student-portal/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware around the given
// handler set.
func SetupRoutes(h *handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Session APIs
	mux.HandleFunc("/login", middleware.EnableCORS(h.Login))
	mux.HandleFunc("/logout", middleware.EnableCORS(middleware.RequireAuth(h.Logout)))

	// Page read models
	mux.HandleFunc("/dashboard", middleware.EnableCORS(middleware.RequireAuth(h.GetDashboard)))
	mux.HandleFunc("/profile", middleware.EnableCORS(middleware.RequireAuth(h.GetProfile)))
	mux.HandleFunc("/attendance", middleware.EnableCORS(middleware.RequireAuth(h.GetAttendance)))
	mux.HandleFunc("/cgpa", middleware.EnableCORS(middleware.RequireAuth(h.GetCGPA)))

	// Fee catalog & selection APIs
	mux.HandleFunc("/fees", middleware.EnableCORS(middleware.RequireAuth(h.GetFees)))
	mux.HandleFunc("/fees/summary", middleware.EnableCORS(middleware.RequireAuth(h.GetFeeSummary)))
	mux.HandleFunc("/fees/select", middleware.EnableCORS(middleware.RequireAuth(h.ToggleSelection)))
	mux.HandleFunc("/fees/select-all", middleware.EnableCORS(middleware.RequireAuth(h.SelectAllFees)))
	mux.HandleFunc("/fees/selection", middleware.EnableCORS(middleware.RequireAuth(h.GetSelection)))

	// Payment & history APIs
	mux.HandleFunc("/pay", middleware.EnableCORS(middleware.RequireAuth(h.Pay)))
	mux.HandleFunc("/transactions", middleware.EnableCORS(middleware.RequireAuth(h.GetTransactions)))
	mux.HandleFunc("/transactions/export", middleware.EnableCORS(middleware.RequireAuth(h.ExportTransactions)))
	mux.HandleFunc("/receipt", middleware.EnableCORS(middleware.RequireAuth(h.GetReceipt)))
	mux.HandleFunc("/receipt/download", middleware.EnableCORS(middleware.RequireAuth(h.DownloadReceipt)))

	// Operational APIs
	mux.HandleFunc("/api/events/dlq", middleware.EnableCORS(h.GetEventDeadLetters))
	mux.HandleFunc("/health", middleware.EnableCORS(h.Health))

	return mux
}
