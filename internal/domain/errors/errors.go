package errors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidStatus        = errors.New("unknown status")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrCropUnavailable      = errors.New("crop unavailable")
	ErrJobNotOpen           = errors.New("delivery job not open")
	ErrActiveOrders         = errors.New("crop has active orders")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRole          = errors.New("unknown role")
)
