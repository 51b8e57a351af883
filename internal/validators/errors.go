package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped by every "required" error below.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is wrapped by every malformed-value error below.
	ErrInvalidField = errors.New("invalid field")
)

var (
	ErrEmptyName        = fmt.Errorf("%w: name", ErrMissingField)
	ErrEmptyEmail       = fmt.Errorf("%w: email", ErrMissingField)
	ErrEmptyPassword    = fmt.Errorf("%w: password", ErrMissingField)
	ErrEmptyOldPassword = fmt.Errorf("%w: old password", ErrMissingField)
	ErrEmptyNewPassword = fmt.Errorf("%w: new password", ErrMissingField)
	ErrEmptySender      = fmt.Errorf("%w: snd_address", ErrMissingField)
	ErrEmptyRecipient   = fmt.Errorf("%w: rcv_address", ErrMissingField)
	ErrEmptyValue       = fmt.Errorf("%w: value", ErrMissingField)
	ErrEmptyKey         = fmt.Errorf("%w: snd_key", ErrMissingField)

	ErrInvalidEmail     = fmt.Errorf("%w: email is not a valid address", ErrInvalidField)
	ErrPasswordTooLong  = fmt.Errorf("%w: password is longer than %d bytes", ErrInvalidField, MaxPasswordBytes)
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", ErrInvalidField)
)
