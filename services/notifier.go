package services

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"student-portal/config"
	"student-portal/models"
	"student-portal/utils"
)

// SendPaymentConfirmation emails a short confirmation for a completed
// payment. Best-effort: with SMTP unconfigured it is a no-op, and callers
// only log a returned error.
func SendPaymentConfirmation(student models.Student, txn models.Transaction) error {
	cfg := config.AppConfig
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil // email disabled
	}

	from := cfg.EmailFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your payment of <b>Rs. %s</b> for <b>%s</b> was received.</p>"+
			"<p>Transaction reference: <code>%s</code><br>Payment method: %s</p>"+
			"<p>FL University Accounts Office</p>",
		student.Name, utils.FormatINR(txn.Amount), txn.Description,
		txn.TransactionID, txn.PaymentMethod)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", student.Email)
	m.SetHeader("Subject", "Payment confirmation - "+txn.TransactionID)
	m.SetBody("text/html", body)

	port := 587
	if p, err := strconv.Atoi(cfg.SMTPPort); err == nil {
		port = p
	}

	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	return d.DialAndSend(m)
}
