package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-api-hub/models"
)

// Field names understood by [UserValidator].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	// FieldCredentials only checks that email and password are present; it
	// is used for login, where format errors must look like wrong
	// credentials.
	FieldCredentials = "credentials"
	FieldProfile     = "profile"
)

const (
	maxEmailLength = 254
	maxNameLength  = 100
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

// UserValidator validates signup, login and profile-update input.
type UserValidator struct {
	passwordMinLength int
}

// NewUserValidator returns a Validator enforcing passwordMinLength.
func NewUserValidator(passwordMinLength int) Validator {
	return &UserValidator{passwordMinLength: passwordMinLength}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ProfileUpdateRequest:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdateRequest:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = v.validatePassword(req.Password)
		case FieldName:
			err = validateName(req.Name)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateProfileUpdate(req models.ProfileUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			if req.Name == nil && req.Password == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if req.Name != nil {
				if err := validateName(*req.Name); err != nil {
					return err
				}
			}
		case FieldPassword:
			if req.Password != nil {
				if err := v.validatePassword(*req.Password); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < v.passwordMinLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, v.passwordMinLength)
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// validateEmail accepts a bare address ("a@x.com"), not a display-name form.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
