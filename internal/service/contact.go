// internal/service/contact.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/recaptcha"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

const contactThanks = "Thanks for contacting us! We’ll get back to you soon."

// Verifier checks a reCAPTCHA token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*recaptcha.Result, error)
}

// Notifier is told about every stored contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}

type ContactInput struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Email          string `json:"email" validate:"required,email,max=180"`
	Subject        string `json:"subject" validate:"required,min=2,max=160"`
	Message        string `json:"message" validate:"required,min=5,max=5000"`
	Type           string `json:"type" validate:"required,oneof=General Partnership Feedback"`
	RecaptchaToken string `json:"recaptchaToken" validate:"max=4096"`
	// Honeypot is a hidden form field. Humans leave it empty.
	Honeypot string `json:"hp_field"`
}

// ContactMeta is what the transport knows about the sender.
type ContactMeta struct {
	IP        string
	UserAgent string
}

type ContactResult struct {
	ID      uuid.UUID `json:"id"`
	OK      bool      `json:"ok"`
	Message string    `json:"message"`
}

type ContactService struct {
	repo     repository.ContactRepositoryIface
	validate *validation.Validator
	verifier Verifier
	notifier Notifier
	logger   *slog.Logger
}

// NewContactService wires the contact form. A nil verifier disables reCAPTCHA and a nil
// notifier disables email notifications.
func NewContactService(repo repository.ContactRepositoryIface, validate *validation.Validator, verifier Verifier, notifier Notifier, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{repo: repo, validate: validate, verifier: verifier, notifier: notifier, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput, meta ContactMeta) (*ContactResult, error) {
	if strings.TrimSpace(in.Honeypot) != "" {
		return nil, domain.ErrSpamDetected
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	var score *float64
	if s.verifier != nil {
		if in.RecaptchaToken == "" {
			return nil, domain.ErrMissingCaptcha
		}
		res, err := s.verifier.Verify(ctx, in.RecaptchaToken, meta.IP)
		if err != nil {
			s.logger.ErrorContext(ctx, "recaptcha verification failed", "error", err)
			return nil, domain.ErrCaptchaUnavailable
		}
		if !res.Success {
			return nil, domain.ErrCaptchaFailed
		}
		score = res.Score
	}

	msg := &model.ContactMessage{
		Name:           in.Name,
		Email:          in.Email,
		Subject:        in.Subject,
		Message:        in.Message,
		Type:           model.ContactType(in.Type),
		IP:             nonEmpty(meta.IP),
		UserAgent:      nonEmpty(meta.UserAgent),
		RecaptchaScore: score,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			s.logger.WarnContext(ctx, "contact notification failed", "contact_id", msg.ID, "error", err)
		}
	}

	return &ContactResult{ID: msg.ID, OK: true, Message: contactThanks}, nil
}

// Export returns messages received since the given time, oldest first.
func (s *ContactService) Export(ctx context.Context, since time.Time) ([]model.ContactMessage, error) {
	return s.repo.FindSince(ctx, since)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
