// Package mail sends transactional email over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/blog-backend/internal/config"
)

// Message is a single HTML email.
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends mail through a relay. net/smtp upgrades to STARTTLS whenever
// the server offers it.
type SMTP struct {
	addr   string
	auth   smtp.Auth
	from   mail.Address
	send   sendFunc
	logger *slog.Logger
	now    func() time.Time
}

// NewSMTP creates an SMTP sender from the relay and sender settings.
func NewSMTP(smtpCfg config.SMTPConfig, emailCfg config.EmailConfig, logger *slog.Logger) *SMTP {
	var auth smtp.Auth
	if smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	}
	return &SMTP{
		addr:   net.JoinHostPort(smtpCfg.Host, strconv.Itoa(smtpCfg.Port)),
		auth:   auth,
		from:   mail.Address{Name: emailCfg.FromName, Address: emailCfg.FromEmail},
		send:   smtp.SendMail,
		logger: logger.With("component", "mail"),
		now:    time.Now,
	}
}

// Send delivers msg. net/smtp has no context support, so ctx is only
// checked before dialing.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := mail.Address{Name: msg.ToName, Address: msg.ToEmail}
	body := s.render(to, msg)

	if err := s.send(s.addr, s.auth, s.from.Address, []string{to.Address}, body); err != nil {
		return fmt.Errorf("mail: send to %s: %w", to.Address, err)
	}

	s.logger.InfoContext(ctx, "mail sent", slog.String("to", to.Address), slog.String("subject", msg.Subject))
	return nil
}

func (s *SMTP) render(to mail.Address, msg Message) []byte {
	var b bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&b, "%s: %s\r\n", k, v) }

	header("From", s.from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", s.now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="utf-8"`)
	header("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.HTML, "\n", "\r\n"))
	return b.Bytes()
}

// Discard drops every message. It is used when SMTP is disabled.
type Discard struct {
	logger *slog.Logger
}

// NewDiscard returns a sender that only logs that delivery was skipped.
func NewDiscard(logger *slog.Logger) *Discard {
	return &Discard{logger: logger.With("component", "mail")}
}

func (d *Discard) Send(ctx context.Context, msg Message) error {
	d.logger.DebugContext(ctx, "smtp disabled, mail dropped", slog.String("to", msg.ToEmail))
	return nil
}

// New picks the SMTP sender when enabled and Discard otherwise.
func New(smtpCfg config.SMTPConfig, emailCfg config.EmailConfig, logger *slog.Logger) Sender {
	if !smtpCfg.Enabled {
		return NewDiscard(logger)
	}
	return NewSMTP(smtpCfg, emailCfg, logger)
}

// PasswordPlaceholder is replaced by the generated password in the
// registration template.
const PasswordPlaceholder = "{password}"

// Registration renders the welcome email carrying the generated password.
func Registration(cfg config.EmailConfig, name, email, password string) Message {
	return Message{
		ToName:  name,
		ToEmail: email,
		Subject: cfg.Subject,
		HTML:    strings.ReplaceAll(cfg.Body, PasswordPlaceholder, password),
	}
}
