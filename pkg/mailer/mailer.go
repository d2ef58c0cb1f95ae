package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer renders a named template and dispatches one email.
type Mailer interface {
	Send(ctx context.Context, to, subject, templateName string, data map[string]any) error
}

type smtpMailer struct {
	host      string
	port      string
	username  string
	password  string
	from      string
	templates *template.Template
	log       *zap.Logger
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) (Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	return &smtpMailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.User,
		password:  cfg.Password,
		from:      cfg.From,
		templates: tmpl,
		log:       log.With(zap.String("component", "mailer")),
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, templateName string, data map[string]any) error {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, templateName+".html", data); err != nil {
		m.log.Error("Failed to render mail template",
			zap.Error(err),
			zap.String("template", templateName),
		)
		return fmt.Errorf("render template %s: %w", templateName, err)
	}

	headers := fmt.Sprintf("From: %s\r\n", m.from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n" +
		"\r\n"
	msg := append([]byte(headers), body.Bytes()...)

	if err := m.deliver(ctx, to, msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("template", templateName),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("template", templateName),
	)
	return nil
}

// deliver speaks SMTP over implicit TLS (port 465 style).
func (m *smtpMailer) deliver(ctx context.Context, to string, msg []byte) error {
	serverAddr := m.host + ":" + m.port

	tlsConfig := &tls.Config{
		ServerName: m.host,
	}

	dialer := &tls.Dialer{Config: tlsConfig}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("dial mail relay: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return nil
}
