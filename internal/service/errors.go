package service

import "errors"

// Sentinel errors handlers map onto HTTP statuses. Services wrap them with
// fmt.Errorf("%w: ...") to carry a client-facing message.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	// ErrAssistantNotConfigured means the completion provider credential is
	// absent; the outbound call is never attempted.
	ErrAssistantNotConfigured = errors.New("assistant provider not configured")
)
