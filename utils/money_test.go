package utils

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0"},
		{amount: 999, want: "999"},
		{amount: 1500, want: "1,500"},
		{amount: 45000, want: "45,000"},
		{amount: 150000, want: "1,50,000"},
		{amount: 4500000, want: "45,00,000"},
		{amount: 12345678, want: "1,23,45,678"},
		{amount: -45000, want: "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
