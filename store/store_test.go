package store

import (
	"reflect"
	"testing"
	"time"

	"student-portal/models"
)

func TestSummaryPartition(t *testing.T) {
	s := New()

	sum := s.Summary()
	if sum.Paid+sum.Pending != sum.Total {
		t.Errorf("paid (%d) + pending (%d) != total (%d)", sum.Paid, sum.Pending, sum.Total)
	}

	// Per-category amounts must partition the total.
	categories := []string{
		models.CategoryTuition,
		models.CategoryTransport,
		models.CategorySports,
		models.CategoryCertification,
		models.CategoryOther,
	}
	var byCategory int64
	for _, c := range categories {
		for _, f := range s.Fees(c) {
			byCategory += f.Amount
		}
	}
	if byCategory != sum.Total {
		t.Errorf("sum over categories = %d, want %d", byCategory, sum.Total)
	}
}

func TestFeesFilter(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "all explicit", category: "all", want: []string{"fee-1", "fee-2", "fee-3", "fee-4", "fee-5", "fee-6", "fee-7"}},
		{name: "all implicit", category: "", want: []string{"fee-1", "fee-2", "fee-3", "fee-4", "fee-5", "fee-6", "fee-7"}},
		{name: "tuition", category: models.CategoryTuition, want: []string{"fee-1"}},
		{name: "transport", category: models.CategoryTransport, want: []string{"fee-4"}},
		{name: "other", category: models.CategoryOther, want: []string{"fee-2", "fee-3", "fee-5"}},
		{name: "unknown category", category: "hostel", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, f := range s.Fees(tt.category) {
				got = append(got, f.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fees(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestToggleSelection(t *testing.T) {
	s := New()

	if err := s.ToggleSelection("fee-1"); err != nil {
		t.Fatalf("ToggleSelection(fee-1) error: %v", err)
	}
	if got := s.Selection(); !reflect.DeepEqual(got, []string{"fee-1"}) {
		t.Errorf("selection = %v, want [fee-1]", got)
	}
	if got := s.SelectionTotal(); got != 45000 {
		t.Errorf("selection total = %d, want 45000", got)
	}

	// Toggling again restores the prior state.
	if err := s.ToggleSelection("fee-1"); err != nil {
		t.Fatalf("ToggleSelection(fee-1) error: %v", err)
	}
	if got := s.Selection(); len(got) != 0 {
		t.Errorf("selection after double toggle = %v, want empty", got)
	}

	// Paid items are a silent no-op.
	if err := s.ToggleSelection("fee-2"); err != nil {
		t.Fatalf("ToggleSelection(fee-2) error: %v", err)
	}
	if got := s.Selection(); len(got) != 0 {
		t.Errorf("selection after toggling paid item = %v, want empty", got)
	}

	// Unknown ids are rejected.
	if err := s.ToggleSelection("fee-99"); err == nil {
		t.Error("ToggleSelection(fee-99) = nil, want error")
	}
}

func TestSelectAll(t *testing.T) {
	s := New()

	s.SelectAll("all")
	want := []string{"fee-1", "fee-3", "fee-4", "fee-5", "fee-6", "fee-7"}
	if got := s.Selection(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectAll(all) selection = %v, want %v", got, want)
	}

	// Same filter, no intervening change: clears.
	s.SelectAll("all")
	if got := s.Selection(); len(got) != 0 {
		t.Errorf("second SelectAll(all) selection = %v, want empty", got)
	}

	// Filtered select picks exactly the unpaid items of that category.
	s.SelectAll(models.CategoryOther)
	want = []string{"fee-3", "fee-5"}
	if got := s.Selection(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectAll(other) selection = %v, want %v", got, want)
	}

	// Different target set replaces rather than toggles.
	s.SelectAll(models.CategoryTransport)
	want = []string{"fee-4"}
	if got := s.Selection(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectAll(transport) selection = %v, want %v", got, want)
	}
}

func TestCompletePayment(t *testing.T) {
	s := New()
	s.SelectAll("all")
	before := len(s.Transactions())

	txn := models.Transaction{
		ID:            "trans-x",
		Date:          time.Now(),
		Amount:        45000,
		Description:   "Tuition Fee",
		PaymentMethod: "UPI",
		TransactionID: "TXNTEST0001",
	}
	s.CompletePayment([]string{"fee-1"}, txn, false)

	fee, _ := s.Fee("fee-1")
	if fee.Status != models.FeeStatusPaid {
		t.Errorf("fee-1 status = %q, want paid", fee.Status)
	}

	// History is prepended.
	transactions := s.Transactions()
	if len(transactions) != before+1 {
		t.Fatalf("history length = %d, want %d", len(transactions), before+1)
	}
	if transactions[0].TransactionID != "TXNTEST0001" {
		t.Errorf("newest transaction = %q, want TXNTEST0001", transactions[0].TransactionID)
	}

	// The paid id leaves the selection, the rest stays.
	for _, id := range s.Selection() {
		if id == "fee-1" {
			t.Error("selection still contains paid item fee-1")
		}
	}
	if got := s.Selection(); len(got) != 5 {
		t.Errorf("selection size = %d, want 5", len(got))
	}

	// SelectionTotal never counts paid items.
	if got, want := s.SelectionTotal(), int64(5000+3500+8000+1500+2500); got != want {
		t.Errorf("selection total = %d, want %d", got, want)
	}
}

func TestTransactionLookup(t *testing.T) {
	s := New()

	if _, ok := s.Transaction("TXN123456789"); !ok {
		t.Error("seeded transaction TXN123456789 not found")
	}
	if _, ok := s.Transaction("TXN000"); ok {
		t.Error("lookup of unknown transaction succeeded")
	}
}

func TestAttendance(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		year     string
		semester string
		wantErr  bool
		wantPct  float64
	}{
		{name: "current odd", year: "2023-2024", semester: "odd", wantPct: 85.6},
		{name: "previous even", year: "2022-2023", semester: "even", wantPct: 87.9},
		{name: "unknown year", year: "2020-2021", semester: "odd", wantErr: true},
		{name: "unknown semester", year: "2023-2024", semester: "summer", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := s.Attendance(tt.year, tt.semester)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Attendance() error: %v", err)
			}
			if report.OverallPct != tt.wantPct {
				t.Errorf("overall percentage = %v, want %v", report.OverallPct, tt.wantPct)
			}
		})
	}
}
