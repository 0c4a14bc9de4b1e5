// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// Content errors
	ErrSlugConflict   = errors.New("slug already in use")
	ErrModuleDisabled = errors.New("module disabled")
	ErrIdeaRequired   = errors.New("featured idea requires an existing idea")
	ErrMediaNotFound  = errors.New("referenced media not found")

	// Contact guard errors
	ErrSpamDetected       = errors.New("spam detected")
	ErrMissingCaptcha     = errors.New("missing reCAPTCHA token")
	ErrCaptchaFailed      = errors.New("reCAPTCHA validation failed")
	ErrCaptchaUnavailable = errors.New("reCAPTCHA verification unavailable")

	// Upload errors
	ErrFileTooLarge = errors.New("file too large")
	ErrMissingFile  = errors.New("missing file")
)
