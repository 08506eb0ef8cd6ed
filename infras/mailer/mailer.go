package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"nest/config"
	"nest/infras/otel"
	"nest/shared/constant"
)

const (
	otelAttrRecipient = "mail.recipient"
	otelAttrSubject   = "mail.subject"
)

// Mailer sends transactional HTML mail. When SMTP is not configured the
// implementation degrades to a logged no-op so callers never fail on it.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	AdminEmail() string
	Enabled() bool
}

type smtpMailer struct {
	host       string
	port       string
	username   string
	password   string
	sender     string
	adminEmail string
	otel       otel.Otel
}

func New(conf *config.Config, ot otel.Otel) Mailer {
	smtpConf := conf.External.SMTP

	if smtpConf.Host == "" || smtpConf.Sender == "" {
		log.Warn().Msg("SMTP is not configured, outbound mail is disabled")
	}

	return &smtpMailer{
		host:       smtpConf.Host,
		port:       smtpConf.Port,
		username:   smtpConf.Username,
		password:   smtpConf.Password,
		sender:     smtpConf.Sender,
		adminEmail: smtpConf.AdminEmail,
		otel:       ot,
	}
}

func (m *smtpMailer) Enabled() bool {
	return m.host != "" && m.sender != ""
}

func (m *smtpMailer) AdminEmail() string {
	return m.adminEmail
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if !m.Enabled() {
		log.Warn().Str("to", to).Str("subject", subject).Msg("skipping mail, SMTP is not configured")

		return nil
	}

	if to == "" || !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient email: %q", to)
	}

	msg := []byte("From: " + m.sender + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := m.host + ":" + m.port

	if err = m.sendMail(ctx, addr, auth, to, msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")

	return nil
}

// sendMail drives the SMTP session over a connection dialed with the caller's
// context. The context deadline is applied to the connection, so a hung server
// cannot hold the session open past the caller's bound.
func (m *smtpMailer) sendMail(ctx context.Context, addr string, auth smtp.Auth, to string, msg []byte) error {
	dialer := net.Dialer{}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("failed to set connection deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("failed to open SMTP session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(auth); err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}
		}
	}

	if err = client.Mail(m.sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data stream: %w", err)
	}

	if _, err = writer.Write(msg); err != nil {
		return fmt.Errorf("failed to write mail body: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close data stream: %w", err)
	}

	if err = client.Quit(); err != nil {
		return fmt.Errorf("failed to close SMTP session: %w", err)
	}

	return nil
}
