package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/mocks"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/recaptcha"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type contactFixture struct {
	repo     *mocks.MockContactRepositoryIface
	verifier *mocks.MockVerifier
	notifier *mocks.MockNotifier
}

func newContactService(t *testing.T, withCaptcha bool) (*service.ContactService, contactFixture) {
	ctrl := gomock.NewController(t)
	f := contactFixture{
		repo:     mocks.NewMockContactRepositoryIface(ctrl),
		verifier: mocks.NewMockVerifier(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	var verifier service.Verifier
	if withCaptcha {
		verifier = f.verifier
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewContactService(f.repo, validation.New(), verifier, f.notifier, logger), f
}

func validContact() service.ContactInput {
	return service.ContactInput{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Subject: "Partnering",
		Message: "We would like to partner with you.",
		Type:    "Partnership",
	}
}

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()
	meta := service.ContactMeta{IP: "203.0.113.7", UserAgent: "test-agent"}

	t.Run("stores and notifies", func(t *testing.T) {
		svc, f := newContactService(t, false)
		id := uuid.New()

		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.ContactMessage) error {
				assert.Equal(t, "Asha Rao", msg.Name)
				assert.Equal(t, model.ContactType("Partnership"), msg.Type)
				require.NotNil(t, msg.IP)
				assert.Equal(t, "203.0.113.7", *msg.IP)
				assert.Nil(t, msg.RecaptchaScore)
				msg.ID = id
				return nil
			})
		f.notifier.EXPECT().NotifyContact(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Submit(ctx, validContact(), meta)
		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.True(t, res.OK)
		assert.Equal(t, "Thanks for contacting us! We’ll get back to you soon.", res.Message)
	})

	t.Run("honeypot rejects before validation", func(t *testing.T) {
		svc, _ := newContactService(t, true)

		_, err := svc.Submit(ctx, service.ContactInput{Honeypot: "http://spam"}, meta)
		assert.ErrorIs(t, err, domain.ErrSpamDetected)
	})

	t.Run("invalid body", func(t *testing.T) {
		svc, _ := newContactService(t, false)
		in := validContact()
		in.Email = "not-an-email"
		in.Type = "Sales"

		_, err := svc.Submit(ctx, in, meta)
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 2)
	})

	t.Run("missing captcha token", func(t *testing.T) {
		svc, _ := newContactService(t, true)

		_, err := svc.Submit(ctx, validContact(), meta)
		assert.ErrorIs(t, err, domain.ErrMissingCaptcha)
	})

	t.Run("captcha rejected", func(t *testing.T) {
		svc, f := newContactService(t, true)
		in := validContact()
		in.RecaptchaToken = "token"

		f.verifier.EXPECT().Verify(gomock.Any(), "token", "203.0.113.7").Return(&recaptcha.Result{Success: false}, nil)

		_, err := svc.Submit(ctx, in, meta)
		assert.ErrorIs(t, err, domain.ErrCaptchaFailed)
	})

	t.Run("captcha transport error", func(t *testing.T) {
		svc, f := newContactService(t, true)
		in := validContact()
		in.RecaptchaToken = "token"

		f.verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := svc.Submit(ctx, in, meta)
		assert.ErrorIs(t, err, domain.ErrCaptchaUnavailable)
	})

	t.Run("captcha score stored and notify failure ignored", func(t *testing.T) {
		svc, f := newContactService(t, true)
		in := validContact()
		in.RecaptchaToken = "token"
		score := 0.9

		f.verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(&recaptcha.Result{Success: true, Score: &score}, nil)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.ContactMessage) error {
				require.NotNil(t, msg.RecaptchaScore)
				assert.Equal(t, 0.9, *msg.RecaptchaScore)
				return nil
			})
		f.notifier.EXPECT().NotifyContact(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		res, err := svc.Submit(ctx, in, meta)
		require.NoError(t, err)
		assert.True(t, res.OK)
	})
}
