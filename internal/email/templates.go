package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateManager управляет шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	config    Config
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager(config Config) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
		config:    config,
	}

	for _, name := range []string{"confirmation"} {
		tpl, err := tm.loadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// loadTemplate загружает шаблон из файла, с fallback на встроенный
func (tm *TemplateManager) loadTemplate(name string) (*template.Template, error) {
	if tm.config.TemplatesDir != "" {
		contentPath := filepath.Join(tm.config.TemplatesDir, name+".html")
		if tpl, err := template.ParseFiles(contentPath); err == nil {
			return tpl, nil
		}
	}
	return tm.builtinTemplate(name)
}

// builtinTemplate возвращает встроенные шаблоны
func (tm *TemplateManager) builtinTemplate(name string) (*template.Template, error) {
	var tplText string

	switch name {
	case "confirmation":
		tplText = confirmationTemplate
	default:
		return nil, fmt.Errorf("unknown template: %s", name)
	}

	return template.New(name).Parse(tplText)
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Subject}}</title></head>
<body style="font-family: Arial, sans-serif; background: #f4f4f4; padding: 20px;">
  <div style="max-width: 560px; margin: 0 auto; background: #ffffff; padding: 32px; border-radius: 8px;">
    <h2>Hello{{if .UserName}}, {{.UserName}}{{end}}!</h2>
    <p>Thank you for registering. Please confirm your email address to activate your account.</p>
    <p style="text-align: center; margin: 32px 0;">
      <a href="{{.ActionURL}}" style="background: #2d7ff9; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">{{.ActionText}}</a>
    </p>
    <p>If the button does not work, copy this link into your browser:</p>
    <p><a href="{{.ActionURL}}">{{.ActionURL}}</a></p>
    <p style="color: #888888; font-size: 12px;">The link expires after a short time. If it has already expired, opening it will send you a fresh one.</p>
    {{if .SupportEmail}}<p style="color: #888888; font-size: 12px;">Questions? Contact {{.SupportEmail}}.</p>{{end}}
  </div>
</body>
</html>`
