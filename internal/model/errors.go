package model

import (
	"errors"
	"fmt"
)

var (
	ErrRejectedInput      = errors.New("input rejected by moderation")
	ErrEmptyResponse      = errors.New("provider returned no message content")
	ErrSignInRequired     = errors.New("sign in required to continue generating")
	ErrInputTooLong       = errors.New("input is too long")
	ErrGenerationNotFound = errors.New("generation not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrSettingsNotFound   = errors.New("settings not found")
	ErrUserDoesNotExist   = errors.New("user doesn't exist")
	ErrTemplateNotFound   = errors.New("template not found")

	ErrTelegramUserDoesNotExist = errors.New("telegram user doesn't exist")
)

// TransportError is a network, timeout or non-2xx failure talking to the
// generation API. StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation api returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation api request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError means the model output did not contain the expected replies payload.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid model output: %s: %v", e.Reason, e.Err)
	}
	return "invalid model output: " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
