package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// User errors
	ErrUsernameRequired      = errors.New("Username is required")
	ErrUserNotFound          = errors.New("User not found")
	ErrBothUsernamesRequired = errors.New("Both usernames are required")

	// Direct message validation errors. The exact strings are part of the
	// API contract and are returned verbatim to clients.
	ErrSenderRequired    = errors.New("Sender username is required")
	ErrRecipientRequired = errors.New("Recipient username is required")
	ErrInvalidContent    = errors.New("Invalid message content")
	ErrSelfMessage       = errors.New("Cannot send a message to yourself")
	ErrSenderNotFound    = errors.New("Sender not found")
	ErrRecipientNotFound = errors.New("Recipient not found")

	// Channel errors
	ErrChannelNotFound = errors.New("Channel not found")
	ErrChannelExists   = errors.New("channel already exists")
)

// validationErrors are rejections callers caused themselves; handlers map
// them to 400 with the message, everything else becomes a generic 500.
var validationErrors = []error{
	ErrUsernameRequired,
	ErrUserNotFound,
	ErrBothUsernamesRequired,
	ErrSenderRequired,
	ErrRecipientRequired,
	ErrInvalidContent,
	ErrSelfMessage,
	ErrSenderNotFound,
	ErrRecipientNotFound,
	ErrChannelNotFound,
	ErrChannelExists,
}

// ValidationError is a client-caused rejection with a dynamic message,
// e.g. channel name length bounds.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError creates a rejection carrying msg to the client
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidationError reports whether err is a client-caused rejection
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
