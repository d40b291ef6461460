package app

import "errors"

// Error kinds. Every service failure wraps exactly one of them, so callers
// branch with errors.Is and show Error.Message to the client.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrStorage    = errors.New("storage error")
)

const (
	MsgCredentialsRequired   = "Email and password are required"
	MsgEmailRegistered       = "Email already registered"
	MsgInvalidCredentials    = "Invalid email or password"
	MsgPasswordTooLong       = "Password must be at most 72 bytes"
	MsgSignupFailed          = "Server error during signup"
	MsgLoginFailed           = "Server error during login"
	MsgPostFieldsRequired    = "Content and userId are required"
	MsgCreatePostFailed      = "Server error creating post"
	MsgListPostsFailed       = "Server error fetching posts"
	MsgHighlightFieldsNeeded = "All fields are required"
	MsgSaveHighlightFailed   = "Server error saving highlight"
	MsgListHighlightsFailed  = "Server error fetching highlights"
	MsgDeleteHighlightFailed = "Server error deleting highlight"
	MsgInvalidUserID         = "Invalid userId"
	MsgInvalidHighlightID    = "Invalid highlightId"
	MsgAccessDenied          = "Not allowed"
)

type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func conflictError(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func authError(msg string) error {
	return &Error{Kind: ErrAuth, Message: msg}
}

func storageError(msg string, err error) error {
	return &Error{Kind: ErrStorage, Message: msg, Err: err}
}

// KindName is the short label used in logs and metrics.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrStorage):
		return "storage"
	default:
		return "unknown"
	}
}
