package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload rendered into email templates.
type TemplateData struct {
	UserName   string
	Subject    string
	Message    string
	ActionURL  string
	ActionText string
}

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Provider sends application email. Dispatch failures are reported to the
// caller, but callers on the registration path must not fail the request on
// them.
type Provider interface {
	Send(email *Email) error
	SendVerification(to, verifyURL string) error
	SendNotification(to, subject, message string) error
}
