package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrContentTooLong     = errors.New("content is too long")
	ErrInvalidURL         = errors.New("invalid url")
	ErrEmptyIDs           = errors.New("IDs list cannot be empty")
	ErrTooManyIDs         = errors.New("too many IDs")
	ErrInvalidID          = errors.New("invalid ID")
	ErrInvalidFieldType   = errors.New("invalid field type")
)
