package provider

import (
	"errors"
)

// Error is a provider-classified API failure. Temporary reports whether a
// retry of the same call may succeed (rate limiting, transient faults).
type Error struct {
	Code    int
	Message string

	Transient bool
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "provider error"
	}

	return e.Message
}

func (e *Error) Temporary() bool {
	return e.Transient
}

// IsTemporary reports whether err is classified as retryable by its source.
func IsTemporary(err error) bool {
	var t interface{ Temporary() bool }

	if errors.As(err, &t) {
		return t.Temporary()
	}

	return false
}
