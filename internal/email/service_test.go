package email_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/config"
	"github.com/dangerclosesec/thinknest/internal/email"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFor(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, email.ProviderNone, email.ProviderFor(cfg))

	cfg.SMTP.Host = "smtp.example.com"
	assert.Equal(t, email.ProviderSMTP, email.ProviderFor(cfg))

	cfg.Sendgrid.APIKey = "SG.key"
	assert.Equal(t, email.ProviderSendgrid, email.ProviderFor(cfg))
}

func TestRenderContactNotification(t *testing.T) {
	svc, err := email.NewEmailService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	html, text, err := svc.Render(email.TemplateContactNotification, map[string]string{
		"ID":        "42",
		"Name":      "Asha <script>",
		"Email":     "asha@example.com",
		"Subject":   "Partnering",
		"Message":   "Hello there",
		"Type":      "Partnership",
		"CreatedAt": "now",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Asha &lt;script&gt;")
	assert.Contains(t, text, "Asha <script>")
	assert.Contains(t, text, "Hello there")
}

func TestRenderUnknownTemplate(t *testing.T) {
	svc, err := email.NewEmailService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, _, err = svc.Render("missing", nil)
	assert.Error(t, err)
}

func TestNotifyContactSkipsWithoutProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Contact.NotifyTo = "team@example.com"

	svc, err := email.NewEmailService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = svc.NotifyContact(context.Background(), &model.ContactMessage{
		ID:        uuid.New(),
		Name:      "Asha",
		Type:      model.ContactGeneral,
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
}
