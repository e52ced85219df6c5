package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the transport layer can pick a
// status code without inspecting message text.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindDuplicate  ErrorKind = "duplicate_resource"
	KindValidation ErrorKind = "validation_failed"
	KindUpstream   ErrorKind = "upstream_error"
	KindInternal   ErrorKind = "internal"
)

// Error is a typed domain failure. Upstream errors additionally carry
// the HTTP status observed on the remote call so it can be forwarded.
type Error struct {
	Kind           ErrorKind
	Message        string
	UpstreamStatus int
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFound builds a not-found error for a missing resource.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewDuplicate builds a duplicate-resource error for uniqueness
// violations.
func NewDuplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// NewValidation builds a validation error for malformed or incomplete
// input.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewUpstream builds an error for a failure surfaced by the
// self-referential read call. status is the remote status code, or zero
// when the call never produced a response.
func NewUpstream(status int, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), UpstreamStatus: status}
}

// NewInternal builds an unclassified failure.
func NewInternal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for anything that is
// not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsDuplicate reports whether err is a duplicate-resource domain error.
func IsDuplicate(err error) bool {
	return KindOf(err) == KindDuplicate
}
