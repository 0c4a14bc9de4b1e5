// internal/email/service.go
package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"path"
	texttemplate "text/template"
	"time"

	"github.com/dangerclosesec/thinknest"
	"github.com/dangerclosesec/thinknest/internal/config"
	"github.com/dangerclosesec/thinknest/internal/model"
	mail "github.com/go-mail/mail/v2"
	"github.com/sendgrid/sendgrid-go"
)

var templateFS = thinknest.EmailFS

// Provider names the outbound mail transport.
type Provider string

const (
	ProviderNone     Provider = "none"
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	TemplateRoot = "templates/emails"

	TemplateContactNotification = "contact_notification"
)

// Message is one outgoing notification before rendering.
type Message struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service renders embedded templates and delivers them through sendgrid or SMTP.
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	dialer         *mail.Dialer
	logger         *slog.Logger
	Templates      map[string]*Template
}

type Template struct {
	HTML      *htmltemplate.Template
	Plaintext *texttemplate.Template
}

// ProviderFor picks sendgrid when an API key is configured, then SMTP, then nothing.
func ProviderFor(cfg *config.Config) Provider {
	switch {
	case cfg.Sendgrid.APIKey != "":
		return ProviderSendgrid
	case cfg.SMTP.Host != "":
		return ProviderSMTP
	default:
		return ProviderNone
	}
}

// NewEmailService selects a provider and parses every template group under templates/emails.
func NewEmailService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	s := &Service{
		config:    cfg,
		provider:  ProviderFor(cfg),
		logger:    logger,
		Templates: make(map[string]*Template),
	}

	switch s.provider {
	case ProviderSendgrid:
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	case ProviderSMTP:
		s.dialer = mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		s.dialer.Timeout = 10 * time.Second
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// Provider returns the transport selected from configuration.
func (s *Service) Provider() Provider {
	return s.provider
}

func (s *Service) loadTemplates() error {
	dirs, err := templateFS.ReadDir(TemplateRoot)
	if err != nil {
		return fmt.Errorf("reading %s: %w", TemplateRoot, err)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("%s is empty", TemplateRoot)
	}

	for _, group := range dirs {
		if !group.IsDir() {
			continue
		}

		dir := path.Join(TemplateRoot, group.Name())
		files, err := templateFS.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", group.Name(), err)
		}
		if len(files) != 2 {
			return fmt.Errorf("template %s: want html.tmpl and plaintext.tmpl, found %d files", group.Name(), len(files))
		}

		html, err := htmltemplate.ParseFS(templateFS, dir+"/html.tmpl")
		if err != nil {
			return fmt.Errorf("failed to parse %s html template: %w", group.Name(), err)
		}
		text, err := texttemplate.ParseFS(templateFS, dir+"/plaintext.tmpl")
		if err != nil {
			return fmt.Errorf("failed to parse %s plaintext template: %w", group.Name(), err)
		}

		s.Templates[group.Name()] = &Template{HTML: html, Plaintext: text}
	}

	return nil
}

// Send renders data.TemplateName and hands it to the active transport.
func (s *Service) Send(ctx context.Context, data Message) error {
	htmlContent, textContent, err := s.Render(data.TemplateName, data.TemplateData)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(ctx, data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			data.From = s.config.SMTP.From
		}
		if data.From == "" {
			return errors.New("email: SMTP_FROM is not set")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("email: no transport for provider %q", s.provider)
	}
}

// Render renders the HTML and plaintext variants of a template.
func (s *Service) Render(name string, data interface{}) (string, string, error) {
	tmpl, ok := s.Templates[name]
	if !ok {
		return "", "", fmt.Errorf("email: unknown template %q", name)
	}

	var html, text bytes.Buffer
	if err := tmpl.HTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("executing %s html: %w", name, err)
	}
	if err := tmpl.Plaintext.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("executing %s plaintext: %w", name, err)
	}
	return html.String(), text.String(), nil
}

// NotifyContact forwards a stored contact message to CONTACT_NOTIFY_TO.
// It is a no-op when no recipient or provider is configured.
func (s *Service) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	if s.provider == ProviderNone || s.config.Contact.NotifyTo == "" {
		s.logger.DebugContext(ctx, "contact notification skipped", "provider", s.provider)
		return nil
	}

	return s.Send(ctx, Message{
		To:           s.config.Contact.NotifyTo,
		FromName:     "ThinkNest",
		Subject:      fmt.Sprintf("[%s] %s", msg.Type, msg.Subject),
		TemplateName: TemplateContactNotification,
		TemplateData: struct {
			ID        string
			Name      string
			Email     string
			Subject   string
			Message   string
			Type      string
			CreatedAt string
		}{
			ID:        msg.ID.String(),
			Name:      msg.Name,
			Email:     msg.Email,
			Subject:   msg.Subject,
			Message:   msg.Message,
			Type:      string(msg.Type),
			CreatedAt: msg.CreatedAt.UTC().Format(time.RFC1123),
		},
	})
}
