package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"

	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase/interfaces"
)

// SMTPNotifier sends payment-link and invoice-ready emails via plain SMTP.
// All sends are best-effort; callers log and move on.

type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifierFromEnv() *SMTPNotifier {
	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = "no-reply@localhost"
		log.Printf("[notification][smtp] SMTP_SENDER not set, using default sender: %s", sender)
	}
	return &SMTPNotifier{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		sender:   sender,
	}
}

func (n *SMTPNotifier) SendPaymentLink(_ context.Context, customer entities.Customer, intent entities.PaymentIntent, ticketURL string) error {
	subject := "Link de pagamento do seu pedido"
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Seu pagamento de %s está aguardando confirmação.</p><p><a href=%q>Pagar agora</a></p>",
		customer.Name, formatCents(intent.TotalCents), ticketURL,
	)
	return n.send(customer.Email, subject, body)
}

func (n *SMTPNotifier) SendInvoice(_ context.Context, customer entities.Customer, intent entities.PaymentIntent) error {
	subject := fmt.Sprintf("Pagamento confirmado - Nota Fiscal %s", intent.Invoice.Number)
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Seu pagamento de %s foi confirmado.</p><p>Nota fiscal: %s</p>",
		customer.Name, formatCents(intent.TotalCents), intent.Invoice.Number,
	)
	if intent.Invoice.DocumentURL != "" {
		body += fmt.Sprintf("<p><a href=%q>Visualizar nota fiscal</a></p>", intent.Invoice.DocumentURL)
	}
	return n.send(customer.Email, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	if n.host == "" || to == "" {
		log.Printf("[notification][smtp] skipped send (host or recipient missing) to=%q", to)
		return nil
	}

	var auth smtp.Auth
	if n.username != "" && n.password != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", n.sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, n.sender, []string{to}, msg)
	if err != nil {
		log.Printf("[notification][smtp] send error to=%s err=%v", to, err)
	} else {
		log.Printf("[notification][smtp] sent to=%s via %s", to, addr)
	}
	return err
}

func formatCents(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
