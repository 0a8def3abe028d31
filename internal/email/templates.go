package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates. The layout mirrors what the frontend links expect: a
// short heading, one line of copy, one action link.
var templateSources = map[string]string{
	"verification": `
<h2>Welcome to WORKZO</h2>
<p>Please verify your email:</p>
<a href="{{.ActionURL}}">{{.ActionText}}</a>`,

	"notification": `
<h2>{{.Subject}}</h2>
<p>{{.Message}}</p>`,
}

// TemplateManager renders the built-in email templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, src := range templateSources {
		t, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %q: %w", name, err)
		}
		tm.templates[name] = t
	}
	return tm, nil
}

// Render renders a named template with the given data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", name, err)
	}
	return buf.String(), nil
}
