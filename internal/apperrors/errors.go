package apperrors

import "errors"

// Kind is a machine-readable error category returned to API clients.
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindAuthentication Kind = "authentication_failed"
	KindPermission     Kind = "permission_denied"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal_error"
)

// Error carries a category, a human-readable message, and optional
// per-field messages for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// WithField attaches a field-level message and returns the error.
func (e *Error) WithField(field, msg string) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
	return e
}

// Validation creates a 400-class error for malformed or out-of-range input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ValidationField creates a validation error scoped to a single field.
func ValidationField(field, msg string) *Error {
	return Validation(msg).WithField(field, msg)
}

// Authentication creates a 401-class error for bad or missing credentials.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// Permission creates a 403-class error for authenticated but unauthorized callers.
func Permission(msg string) *Error {
	return &Error{Kind: KindPermission, Message: msg}
}

// NotFound creates a 404-class error for missing records.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict creates a 409-class error for uniqueness or reference conflicts.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the Kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf extracts field-level messages from an error chain, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
