package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"student-portal/models"
	"student-portal/utils"
)

// BuildReceipt materializes the receipt view for a completed transaction.
// The identity fields come from the session student, not from fixtures.
func BuildReceipt(student models.Student, profile models.StudentProfile, txn models.Transaction) models.Receipt {
	return models.Receipt{
		Transaction: txn,
		StudentName: student.Name,
		StudentID:   student.StudentID,
		Program:     profile.Program,
		IssuedAt:    time.Now(),
	}
}

// GenerateReceiptPDF renders a receipt as a PDF document and returns its
// bytes for streaming. Core fonts only, so amounts use the "Rs." prefix.
func GenerateReceiptPDF(receipt models.Receipt) ([]byte, error) {
	txn := receipt.Transaction

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 10, "FL University")
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Student Name:", receipt.StudentName)
	line("Student ID:", receipt.StudentID)
	line("Program:", receipt.Program)
	pdf.Ln(6)

	line("Transaction ID:", txn.TransactionID)
	line("Payment Date:", txn.Date.Format("January 2, 2006"))
	line("Description:", txn.Description)
	line("Payment Method:", txn.PaymentMethod)
	line("Amount Paid:", "Rs. "+utils.FormatINR(txn.Amount))
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(40, 8, fmt.Sprintf("Issued on %s. This is a computer generated receipt.",
		receipt.IssuedAt.Format("January 2, 2006 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
