package models

import "time"

// Transaction records one completed fee payment. Created exactly once per
// successful submission and immutable afterwards.
type Transaction struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
}

// Receipt is a read-only view of a transaction together with the student it
// was issued to. Not stored; materialized on demand.
type Receipt struct {
	Transaction Transaction `json:"transaction"`
	StudentName string      `json:"student_name"`
	StudentID   string      `json:"student_id"`
	Program     string      `json:"program"`
	IssuedAt    time.Time   `json:"issued_at"`
}
