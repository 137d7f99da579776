package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"student-portal/models"
)

// BuildStatement writes the current fee catalog and the full transaction
// history into a workbook with a sheet per table. The caller owns the file
// and should Close it after writing it out.
func BuildStatement(fees []models.FeeItem, transactions []models.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()

	const feeSheet = "Fees"
	if err := f.SetSheetName("Sheet1", feeSheet); err != nil {
		return nil, fmt.Errorf("error renaming fee sheet: %w", err)
	}

	feeHeaders := []string{"Fee Type", "Category", "Amount", "Due Date", "Status"}
	for i, h := range feeHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(feeSheet, cell, h)
	}
	for row, fee := range fees {
		values := []interface{}{fee.Type, fee.Category, fee.Amount, fee.DueDate, fee.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(feeSheet, cell, v)
		}
	}

	const txnSheet = "Transactions"
	if _, err := f.NewSheet(txnSheet); err != nil {
		return nil, fmt.Errorf("error creating transaction sheet: %w", err)
	}

	txnHeaders := []string{"Date", "Description", "Amount", "Payment Method", "Transaction ID"}
	for i, h := range txnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(txnSheet, cell, h)
	}
	for row, txn := range transactions {
		values := []interface{}{
			txn.Date.Format("January 2, 2006"),
			txn.Description,
			txn.Amount,
			txn.PaymentMethod,
			txn.TransactionID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(txnSheet, cell, v)
		}
	}

	return f, nil
}
