// Package mail assembles and delivers the outbound messages of the
// service: the recommendation list a user asks to receive by email, and
// bug reports forwarded to the support inbox.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/silverspace/go-silverspace/core"
)

// Mailer delivers outbound mail. Handlers depend on this interface so
// tests can substitute a recording fake.
type Mailer interface {
	// SendRecommendations mails the recommended titles to recipient.
	SendRecommendations(ctx context.Context, recipient string, titles []string) error

	// SendBugReport forwards a user bug report to the support inbox.
	SendBugReport(ctx context.Context, report core.BugReport) error
}

// Config holds the SMTP connection and sender settings.
type Config struct {
	Host         string
	Port         int
	Sender       string
	SenderName   string
	Password     string
	SupportInbox string
}

// SMTPMailer sends mail through an SMTP relay with STARTTLS.
type SMTPMailer struct {
	cfg     Config
	logger  zerolog.Logger
	timeout time.Duration
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(cfg Config, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:     cfg,
		logger:  logger.With().Str("component", "mail").Logger(),
		timeout: 30 * time.Second,
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateAddress reports whether addr is a well-formed email address.
func ValidateAddress(addr string) error {
	if !emailPattern.MatchString(addr) {
		return fmt.Errorf("%w: %q", core.ErrInvalidAddress, addr)
	}
	return nil
}

// SendRecommendations mails the numbered recommendation list to recipient.
func (m *SMTPMailer) SendRecommendations(ctx context.Context, recipient string, titles []string) error {
	if err := ValidateAddress(recipient); err != nil {
		return err
	}

	msg := buildRecommendationsMessage(m.cfg, recipient, titles)
	if err := m.send(ctx, recipient, msg); err != nil {
		return fmt.Errorf("send recommendations mail: %w", err)
	}

	m.logger.Info().Str("recipient", recipient).Int("titles", len(titles)).
		Msg("sent recommendations mail")
	return nil
}

// SendBugReport forwards the report, with any attachments, to the support
// inbox. The reporter's address only appears in the body and Reply-To, so
// a bad reporter address cannot fail delivery.
func (m *SMTPMailer) SendBugReport(ctx context.Context, report core.BugReport) error {
	msg, err := buildBugReportMessage(m.cfg, report)
	if err != nil {
		return fmt.Errorf("build bug report mail: %w", err)
	}
	if err := m.send(ctx, m.cfg.SupportInbox, msg); err != nil {
		return fmt.Errorf("send bug report mail: %w", err)
	}

	m.logger.Info().Str("page", report.Page).Str("bug_type", report.BugType).
		Int("attachments", len(report.Attachments)).Msg("sent bug report mail")
	return nil
}

// send performs one SMTP transaction with STARTTLS and plain auth.
func (m *SMTPMailer) send(ctx context.Context, recipient string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(m.timeout))
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.Sender); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}
