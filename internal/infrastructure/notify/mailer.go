package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/tickets/backend/internal/domain/ticketing"
	"github.com/tickets/backend/internal/infrastructure/config"
)

// sender abstracts the SMTP dialer so tests can capture outgoing messages
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends reservation confirmation emails over SMTP
type Mailer struct {
	sender sender
	from   string
	admin  string
	logger *zap.Logger
}

// NewMailer creates a Mailer from mail configuration
func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		sender: dialer,
		from:   cfg.Sender,
		admin:  cfg.Admin,
		logger: logger,
	}
}

// SendConfirmation emails the guest a reservation summary and, when an
// admin address is configured, a copy to the admin inbox.
func (m *Mailer) SendConfirmation(ctx context.Context, reservation *ticketing.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := []*gomail.Message{m.guestMessage(reservation)}
	if m.admin != "" {
		messages = append(messages, m.adminMessage(reservation))
	}

	if err := m.sender.DialAndSend(messages...); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	m.logger.Info("Confirmation email sent",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("email", reservation.Email),
	)
	return nil
}

func (m *Mailer) guestMessage(reservation *ticketing.Reservation) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", reservation.Email)
	msg.SetHeader("Subject", "Your ticket reservation")
	msg.SetBody("text/plain", guestBody(reservation))
	return msg
}

func (m *Mailer) adminMessage(reservation *ticketing.Reservation) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.admin)
	msg.SetHeader("Subject", fmt.Sprintf("New reservation: %s %s", reservation.FirstName, reservation.LastName))
	msg.SetBody("text/plain", adminBody(reservation))
	return msg
}

func guestBody(r *ticketing.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", r.FirstName)
	fmt.Fprintf(&b, "We received your reservation for %d x %s.\n\n", r.Quantity, r.TicketType)
	b.WriteString("We will be in touch with payment and pickup details.\n")
	return b.String()
}

func adminBody(r *ticketing.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reservation %s\n\n", r.ID)
	fmt.Fprintf(&b, "Name: %s %s\n", r.FirstName, r.LastName)
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	fmt.Fprintf(&b, "Ticket: %s\n", r.TicketType)
	fmt.Fprintf(&b, "Quantity: %d\n", r.Quantity)
	if r.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", r.Notes)
	}
	return b.String()
}
