package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrOrderNotFound         = errors.New("order not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrProcessor             = errors.New("payment processor error")
	ErrSignatureVerification = errors.New("signature verification failed")
)

// DetailError is a sentinel plus a message written for the caller. Causes from
// drivers or third parties never go into Detail.
type DetailError struct {
	Sentinel error
	Detail   string
}

func (e *DetailError) Error() string {
	return e.Sentinel.Error() + ": " + e.Detail
}

func (e *DetailError) Unwrap() error {
	return e.Sentinel
}

func WithDetail(sentinel error, format string, args ...any) error {
	return &DetailError{Sentinel: sentinel, Detail: fmt.Sprintf(format, args...)}
}
