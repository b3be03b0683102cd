// Package email delivers customer notifications over SMTP.
package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

var _ ordersports.Notifier = (*Notifier)(nil)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Notifier sends order notifications through an SMTP relay.
type Notifier struct {
	config Config
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewNotifier builds an SMTP-backed notifier.
func NewNotifier(config Config) *Notifier {
	return &Notifier{config: config, send: smtp.SendMail}
}

// OrderConfirmed mails the confirmation for a freshly placed order.
func (n *Notifier) OrderConfirmed(ctx context.Context, address string, order *ordersdomain.Order) error {
	subject := fmt.Sprintf("Order %s confirmed", order.ID)
	return n.deliver(ctx, address, subject, confirmationBody(order))
}

// OrderCancelled mails the cancellation notice.
func (n *Notifier) OrderCancelled(ctx context.Context, address string, order *ordersdomain.Order) error {
	subject := fmt.Sprintf("Order %s cancelled", order.ID)
	body := fmt.Sprintf("Your order %s has been cancelled and the reserved stock released.\r\n", order.ID)
	return n.deliver(ctx, address, subject, body)
}

func (n *Notifier) deliver(ctx context.Context, address, subject, body string) error {
	if n == nil || n.config.Host == "" {
		return errors.New("smtp notifier not configured")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("recipient address is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(n.config.From, address, subject, body)
	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	return n.send(addr, auth, n.config.From, []string{address}, msg)
}

func confirmationBody(order *ordersdomain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your purchase.\r\n\r\nInvoice %s\r\n\r\n", order.Invoice.Number)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s  %s\r\n", item.Name, item.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\r\nTotal: %s\r\n", order.Total.StringFixed(2))
	return b.String()
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
