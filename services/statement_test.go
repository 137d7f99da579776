package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"student-portal/store"
)

func TestBuildStatement(t *testing.T) {
	st := store.New()

	f, err := BuildStatement(st.Fees(""), st.Transactions())
	if err != nil {
		t.Fatalf("BuildStatement() error: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	// Read the workbook back and spot-check both sheets.
	read, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer read.Close()

	tests := []struct {
		sheet string
		cell  string
		want  string
	}{
		{sheet: "Fees", cell: "A1", want: "Fee Type"},
		{sheet: "Fees", cell: "A2", want: "Tuition Fee"},
		{sheet: "Fees", cell: "C2", want: "45000"},
		{sheet: "Fees", cell: "E3", want: "paid"},
		{sheet: "Transactions", cell: "A1", want: "Date"},
		{sheet: "Transactions", cell: "E2", want: "TXN123456789"},
		{sheet: "Transactions", cell: "B2", want: "Library Fee"},
	}
	for _, tt := range tests {
		got, err := read.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) error: %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}
