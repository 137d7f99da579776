package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"student-portal/http/middleware"
	"student-portal/http/response"
	"student-portal/logger"
	"student-portal/services"
)

// GetTransactions returns the payment history, most recent first.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	transactions := h.Store.Transactions()
	response.SuccessResponse(w, http.StatusOK, fmt.Sprintf("Retrieved %d transactions", len(transactions)), transactions)
}

// GetReceipt returns the receipt view for ?transaction_id=.
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	student, ok := middleware.StudentFrom(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Missing session")
		return
	}

	txnID := r.URL.Query().Get("transaction_id")
	txn, found := h.Store.Transaction(txnID)
	if !found {
		response.ErrorResponse(w, http.StatusNotFound, "Transaction not found: "+txnID)
		return
	}

	receipt := services.BuildReceipt(student, h.Store.Profile(), txn)
	response.SuccessResponse(w, http.StatusOK, "", receipt)
}

// DownloadReceipt streams the receipt for ?transaction_id= as a PDF.
func (h *Handler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	student, ok := middleware.StudentFrom(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Missing session")
		return
	}

	txnID := r.URL.Query().Get("transaction_id")
	txn, found := h.Store.Transaction(txnID)
	if !found {
		response.ErrorResponse(w, http.StatusNotFound, "Transaction not found: "+txnID)
		return
	}

	receipt := services.BuildReceipt(student, h.Store.Profile(), txn)
	pdfBytes, err := services.GenerateReceiptPDF(receipt)
	if err != nil {
		logger.Error("Error generating receipt PDF: %v", err)
		response.ErrorResponse(w, http.StatusInternalServerError, "Error generating receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="receipt_`+txn.TransactionID+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// ExportTransactions streams the fee catalog and payment history as an
// Excel workbook.
func (h *Handler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	f, err := services.BuildStatement(h.Store.Fees(""), h.Store.Transactions())
	if err != nil {
		logger.Error("Error building statement workbook: %v", err)
		response.ErrorResponse(w, http.StatusInternalServerError, "Error building statement")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("statement_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := f.WriteTo(w); err != nil {
		logger.Error("Error streaming statement workbook: %v", err)
	}
}
