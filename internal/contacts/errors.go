package contacts

import "errors"

// Sentinel errors for broad classification. Callers match with errors.Is.
var (
	// ErrInvalidFormat marks a malformed phone number or birthday string.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound marks a lookup miss on a contact name or phone value.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks an argument of the wrong shape, such as an
	// empty contact name or an unparsed birthday value.
	ErrInvalidArgument = errors.New("invalid argument")
)
