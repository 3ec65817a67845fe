package secrets

import "errors"

// Rejected arguments. Nothing is transmitted when one of these is returned.
var (
	ErrCounterOutOfRange   = errors.New("secrets: HOTP counter out of range")
	ErrSecretTooLong       = errors.New("secrets: decoded secret too long")
	ErrInvalidBase32       = errors.New("secrets: invalid base32 secret")
	ErrCredentialIDTooLong = errors.New("secrets: credential name too long")
	ErrEmptyCredentialID   = errors.New("secrets: empty credential name")
	ErrInvalidDigits       = errors.New("secrets: digits must be 6 or 8")
	ErrUnknownAlgorithm    = errors.New("secrets: unknown algorithm")
)

// ErrResponseTooLarge is returned when a response does not fit the session input buffer.
var ErrResponseTooLarge = errors.New("secrets: response exceeds input buffer")

// Outcomes reported by the token, returned by Result.Err.
var (
	ErrWrongPIN                   = errors.New("secrets: wrong PIN")
	ErrSlotNotConfigured          = errors.New("secrets: slot not configured or PIN required")
	ErrNoPINAttempts              = errors.New("secrets: no PIN attempts left or PIN not set")
	ErrSecurityStatusNotSatisfied = errors.New("secrets: security status not satisfied")
	ErrCommunication              = errors.New("secrets: communication error")
	ErrValidationFailed           = errors.New("secrets: validation failed")
)
