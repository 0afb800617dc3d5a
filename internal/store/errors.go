package store

import (
	"fmt"
	"net/http"
)

// Error is a store error with an HTTP status code.
//
// "No rows" and "operation failed" are distinct families: not-found errors
// carry 404 and map to the public NotFound page, everything else is an
// infrastructure failure the service layer surfaces as transient.
type Error struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// WithMessage returns a new error with a custom message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Message: msg,
		Err:     e.Err,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	ErrNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "resource not found",
	}

	ErrAlreadyExists = &Error{
		Code:    http.StatusConflict,
		Message: "resource already exists",
	}

	ErrInvalidInput = &Error{
		Code:    http.StatusBadRequest,
		Message: "invalid input",
	}

	// Per-entity not-found sentinels. All satisfy errors.Is(err, ErrNotFound)
	// via matching code in Error.Is below.
	ErrRestaurantNotFound = &Error{Code: http.StatusNotFound, Message: "restaurant not found"}
	ErrLocationNotFound   = &Error{Code: http.StatusNotFound, Message: "location not found"}
	ErrFeaturesNotFound   = &Error{Code: http.StatusNotFound, Message: "features not found"}
	ErrCategoryNotFound   = &Error{Code: http.StatusNotFound, Message: "menu category not found"}
	ErrItemNotFound       = &Error{Code: http.StatusNotFound, Message: "menu item not found"}
	ErrImageNotFound      = &Error{Code: http.StatusNotFound, Message: "gallery image not found"}
	ErrOfferNotFound      = &Error{Code: http.StatusNotFound, Message: "offer not found"}
)

// Is reports whether target matches this error. Errors match when their
// HTTP codes agree, so errors.Is(ErrRestaurantNotFound, ErrNotFound) holds.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
