package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config    *SMTPConfig
	dialer    *gomail.Dialer
	templates *TemplateManager
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if config.Host == "" || config.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &SMTPProvider{
		config:    config,
		dialer:    gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		templates: tm,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
	}
	if email.HTMLBody != "" {
		if email.Body != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to, verifyURL string) error {
	html, err := p.templates.Render("verification", TemplateData{
		ActionURL:  verifyURL,
		ActionText: "Verify Email",
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your WORKZO account",
		HTMLBody: html,
	})
}

func (p *SMTPProvider) SendNotification(to, subject, message string) error {
	html, err := p.templates.Render("notification", TemplateData{
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: html,
	})
}
