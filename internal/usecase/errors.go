package usecase

import "errors"

// Service error taxonomy. Handlers map these onto status codes at the
// request boundary; nothing is retried.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrDelivery           = errors.New("failed to send OTP")
)
