package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind tags an Error with the failure class it represents. The HTTP
// adapter maps each kind to a status code and response body shape exactly
// once; nothing below the adapter knows about HTTP.
type ErrorKind int

const (
	// KindValidation is a batch of field-shape failures, rendered as
	// {"errors": [...]}.
	KindValidation ErrorKind = iota + 1
	// KindImmutableField marks an attempt to set a server-owned field,
	// rendered as {"error": "<field> can not be updated"}.
	KindImmutableField
	// KindBadRequest is a single-message 400 outside the batch validation
	// path (malformed identifier, missing required field), rendered as
	// {"error": "..."}.
	KindBadRequest
	// KindNotFound means an entity or scalar reference did not resolve,
	// rendered as {"error": "<subject> not found"}.
	KindNotFound
	// KindReferenceNotFound is a dangling foreign id caught on the create
	// path, rendered as {"message": "..."}.
	KindReferenceNotFound
)

// Error is the single error currency of the core: a kind, one or more
// human-readable messages and the HTTP status the boundary should answer
// with.
type Error struct {
	Kind     ErrorKind
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Message returns the first (usually only) message.
func (e *Error) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

// NewValidationError wraps the validation engine's message batch.
func NewValidationError(messages []string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Messages: messages}
}

// NewImmutableFieldError reports an attempt to write a server-owned field.
func NewImmutableFieldError(field string) *Error {
	return &Error{
		Kind:     KindImmutableField,
		Status:   http.StatusBadRequest,
		Messages: []string{field + " can not be updated"},
	}
}

// NewInvalidFieldError reports a malformed identifier named by field.
func NewInvalidFieldError(field string) *Error {
	return &Error{
		Kind:     KindBadRequest,
		Status:   http.StatusBadRequest,
		Messages: []string{field + " is invalid"},
	}
}

// NewRequiredFieldError reports a missing field on the single-message
// path (advertiser create/update checks the name inline).
func NewRequiredFieldError(field string) *Error {
	return &Error{
		Kind:     KindBadRequest,
		Status:   http.StatusBadRequest,
		Messages: []string{field + " is required"},
	}
}

// NewNotFoundError reports that subject (an entity name or reference field)
// did not resolve.
func NewNotFoundError(subject string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Status:   http.StatusNotFound,
		Messages: []string{subject + " not found"},
	}
}

// NewReferenceNotFoundError reports a dangling scalar reference on the
// create path.
func NewReferenceNotFoundError(field string) *Error {
	return &Error{
		Kind:     KindReferenceNotFound,
		Status:   http.StatusNotFound,
		Messages: []string{field + " not found"},
	}
}

// NewReferenceListNotFoundError reports every missing id of a list-valued
// reference in a single message, e.g.
// "countries_id [64a...,64b...] not found".
func NewReferenceListNotFoundError(field string, missing []string) *Error {
	return &Error{
		Kind:     KindReferenceNotFound,
		Status:   http.StatusNotFound,
		Messages: []string{fmt.Sprintf("%s [%s] not found", field, strings.Join(missing, ","))},
	}
}
