// Package apperr defines the client-facing error taxonomy.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingField
	KindInvalidField
	KindUnexpectedField
	KindInvalidParent
	KindInvalidPage
	KindNoContent
	KindConflict
	KindUnauthenticated
	KindNotFound
)

// Error is an error whose message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus returns the status code that represents the error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingField, KindInvalidField, KindUnexpectedField,
		KindInvalidParent, KindInvalidPage, KindNoContent, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Is matches errors of the same kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// KindOf returns the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func NewErrMissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Message: "Missing " + field}
}

func NewErrInvalidField(field string) *Error {
	return &Error{Kind: KindInvalidField, Message: "Invalid " + field}
}

func NewErrFolderData() *Error {
	return &Error{Kind: KindUnexpectedField, Message: "Data should not be provided for folders"}
}

func NewErrParentMalformed() *Error {
	return &Error{Kind: KindInvalidParent, Message: "Invalid parentId format"}
}

func NewErrParentNotFound() *Error {
	return &Error{Kind: KindInvalidParent, Message: "Parent not found"}
}

func NewErrParentNotFolder() *Error {
	return &Error{Kind: KindInvalidParent, Message: "Parent is not a folder"}
}

func NewErrInvalidPage() *Error {
	return &Error{Kind: KindInvalidPage, Message: "Invalid page number"}
}

func NewErrNoContent() *Error {
	return &Error{Kind: KindNoContent, Message: "A folder doesn't have content"}
}

func NewErrAlreadyExists() *Error {
	return &Error{Kind: KindConflict, Message: "Already exist"}
}

func NewErrUnauthorized() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Unauthorized"}
}

func NewErrNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Not found"}
}

func NewErrInternal() *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error"}
}
