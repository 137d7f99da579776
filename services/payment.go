package services

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"student-portal/errors"
	"student-portal/logger"
	"student-portal/models"
	"student-portal/store"
)

// Payment scopes
const (
	ScopeSingle = "single"
	ScopeBulk   = "bulk"
)

// PayRequest carries one payment attempt: the scope (a single fee or the
// whole current selection), the chosen method and the method-specific fields
// collected by the payment dialog.
type PayRequest struct {
	Scope  string `json:"scope"`
	FeeID  string `json:"fee_id,omitempty"`
	Method string `json:"method"`

	CardNumber    string `json:"card_number,omitempty"`
	CardExpiry    string `json:"card_expiry,omitempty"`
	CardCVV       string `json:"card_cvv,omitempty"`
	CardName      string `json:"card_name,omitempty"`
	UPIHandle     string `json:"upi_handle,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// Per-method required field sets. Presence-only checks: the portal never
// talks to a gateway, so there is nothing stronger to verify.
type cardFields struct {
	Number string `validate:"required"`
	Expiry string `validate:"required"`
	CVV    string `validate:"required"`
	Name   string `validate:"required"`
}

type upiFields struct {
	Handle string `validate:"required"`
}

type netBankingFields struct {
	AccountNumber string `validate:"required"`
}

// PaymentService runs the payment submission flow against the store. It is
// the only component that marks fee items paid.
type PaymentService struct {
	store    *store.Store
	validate *validator.Validate
}

// NewPaymentService creates a PaymentService backed by the given store.
func NewPaymentService(st *store.Store) *PaymentService {
	return &PaymentService{
		store:    st,
		validate: validator.New(),
	}
}

// Pay validates the request, mints a transaction, marks the fees in scope as
// paid and returns the new transaction. On any validation failure nothing is
// mutated. Event publishing and the confirmation email are best-effort and
// never fail the payment.
func (s *PaymentService) Pay(student models.Student, req PayRequest) (*models.Transaction, error) {
	fees, bulk, err := s.resolveScope(req)
	if err != nil {
		return nil, err
	}
	if err := s.validateFields(req); err != nil {
		return nil, err
	}

	var amount int64
	ids := make([]string, 0, len(fees))
	for _, f := range fees {
		amount += f.Amount
		ids = append(ids, f.ID)
	}

	description := fees[0].Type
	if bulk {
		description = fmt.Sprintf("Bulk Fee Payment (%d items)", len(fees))
	}

	txn := models.Transaction{
		ID:            "trans-" + uuid.NewString(),
		Date:          time.Now(),
		Amount:        amount,
		Description:   description,
		PaymentMethod: models.MethodLabel(req.Method),
		TransactionID: NewTransactionID(),
	}

	s.store.CompletePayment(ids, txn, bulk)
	logger.Info("Payment completed - Student: %s, Txn: %s, Amount: %d, Method: %s",
		student.StudentID, txn.TransactionID, txn.Amount, txn.PaymentMethod)

	go publishPaymentCompleted(student, txn, ids)
	go func() {
		if err := SendPaymentConfirmation(student, txn); err != nil {
			logger.Warn("Failed to send payment confirmation email: %v", err)
		}
	}()

	return &txn, nil
}

// resolveScope returns the fee items the payment covers and whether this is a
// bulk payment over the selection.
func (s *PaymentService) resolveScope(req PayRequest) ([]models.FeeItem, bool, error) {
	switch req.Scope {
	case ScopeSingle:
		fee, ok := s.store.Fee(req.FeeID)
		if !ok {
			return nil, false, errors.NewNotFoundError("fee item not found: " + req.FeeID)
		}
		if !fee.Payable() {
			return nil, false, errors.NewInvalidParamsError("fee is already paid: " + req.FeeID)
		}
		return []models.FeeItem{fee}, false, nil

	case ScopeBulk:
		fees := s.store.SelectedFees()
		if len(fees) == 0 {
			return nil, false, errors.NewInvalidParamsError("no fees selected for payment")
		}
		return fees, true, nil
	}
	return nil, false, errors.NewInvalidParamsError("invalid payment scope: " + req.Scope)
}

// validateFields runs the presence checks for the chosen method.
func (s *PaymentService) validateFields(req PayRequest) error {
	var err error
	switch req.Method {
	case models.MethodCreditCard, models.MethodDebitCard:
		err = s.validate.Struct(cardFields{
			Number: req.CardNumber,
			Expiry: req.CardExpiry,
			CVV:    req.CardCVV,
			Name:   req.CardName,
		})
	case models.MethodUPI:
		err = s.validate.Struct(upiFields{Handle: req.UPIHandle})
	case models.MethodNetBanking:
		err = s.validate.Struct(netBankingFields{AccountNumber: req.AccountNumber})
	default:
		return errors.NewInvalidParamsError("invalid payment method: " + req.Method)
	}

	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		missing := make([]string, 0, len(verrs))
		for _, v := range verrs {
			missing = append(missing, v.Field())
		}
		return errors.NewInvalidParamsError("missing required payment fields: " + strings.Join(missing, ", "))
	}
	return errors.NewInvalidParamsError("invalid payment details")
}

// NewTransactionID returns a "TXN"-prefixed payment reference derived from a
// random UUID, so references cannot collide within a session.
func NewTransactionID() string {
	u := uuid.New()
	return "TXN" + strings.ToUpper(hex.EncodeToString(u[:])[:12])
}

// publishPaymentCompleted emits a payment.completed event. Best-effort; a
// failed publish only logs.
func publishPaymentCompleted(student models.Student, txn models.Transaction, feeIDs []string) {
	evt := map[string]interface{}{
		"event":          "payment.completed",
		"student_id":     student.StudentID,
		"transaction_id": txn.TransactionID,
		"amount":         txn.Amount,
		"method":         txn.PaymentMethod,
		"fee_ids":        feeIDs,
		"ts":             time.Now().UTC().Format(time.RFC3339),
	}
	if err := PublishEvent(txn.TransactionID, evt); err != nil {
		logger.Warn("Failed to publish payment.completed event: %v", err)
	}
}
