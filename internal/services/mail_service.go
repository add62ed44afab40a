package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type IMailService interface {
	SendMailToResetPassword(to, token string) error
}

// SMTPConfig holds SMTP transport and branding settings.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // true for implicit TLS on 465

	AppName    string
	AppBaseURL string // reset links are built against this
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("resetHTML").Parse(resetHTMLTemplate)),
		textTpl: template.Must(template.New("resetText").Parse(resetTextTemplate)),
	}, nil
}

type mailData struct {
	AppName   string
	ButtonURL string
	Year      int
}

const resetHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;padding:24px;background:#0f172a;color:#ffffff;font-family:Arial,sans-serif">
  <h2>Reset your password</h2>
  <p>We received a request to reset your {{.AppName}} password. Click the button
  below to continue. If you didn't request this, you can safely ignore this email.</p>
  <p><a href="{{.ButtonURL}}" style="display:inline-block;padding:12px 20px;background:#2563eb;color:#ffffff;border-radius:6px;text-decoration:none">Reset Password</a></p>
  <p style="color:#94a3b8">&mdash; {{.AppName}} (c) {{.Year}}</p>
</body>
</html>`

const resetTextTemplate = `Reset your password

We received a request to reset your {{.AppName}} password.
Open this link to continue: {{.ButtonURL}}

If you didn't request this, ignore this email.

-- {{.AppName}} (c) {{.Year}}`

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	data := mailData{
		AppName:   s.cfg.AppName,
		ButtonURL: link,
		Year:      time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, "Reset your password", hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n\r\n", textBody)
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n\r\n", htmlBody)
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		if err = c.Mail(s.cfg.From); err != nil {
			return err
		}
		if err = c.Rcpt(to); err != nil {
			return err
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err = w.Write(msg.Bytes()); err != nil {
			return err
		}
		return w.Close()
	}

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}
