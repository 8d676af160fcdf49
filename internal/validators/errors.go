package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntryID   = errors.New("entry id is required")
	ErrEmptyEntryName = errors.New("entry name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyPassword  = errors.New("master password is required")
)
