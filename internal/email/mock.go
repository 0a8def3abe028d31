package email

import "sync"

// MockProvider records sent mail instead of delivering it. Used in tests and
// when no SMTP host is configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, email)
	return nil
}

func (p *MockProvider) SendVerification(to, verifyURL string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Verify your WORKZO account",
		Body:    verifyURL,
	})
}

func (p *MockProvider) SendNotification(to, subject, message string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: subject,
		Body:    message,
	})
}

// SentTo returns the messages addressed to an address.
func (p *MockProvider) SentTo(addr string) []*Email {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*Email
	for _, e := range p.Sent {
		for _, to := range e.To {
			if to == addr {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
