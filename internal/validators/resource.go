package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-api-hub/models"
)

// Field names understood by [ResourceValidator]. They match the public
// (JSON) field names of the resources so that partial updates can be
// validated key by key.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldCompleted   = "completed"
	FieldIsPublic    = "isPublic"
	FieldOriginalURL = "originalUrl"
	FieldIDs         = "ids"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
	maxContentLength     = 100_000
	maxURLLength         = 2048
	maxBulkIDs           = 100
)

// ResourceValidator validates todo, note and URL input, including partial
// updates given as a map of public field names.
type ResourceValidator struct {
}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches on the dynamic type of obj. For map[string]any
// (partial updates) fields are ignored: every known key present is
// validated and unknown keys are left to the repository allow-list.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoInput:
		return v.validateTodo(value, fields...)
	case *models.TodoInput:
		return v.validateTodo(*value, fields...)

	case models.NoteInput:
		return v.validateNote(value, fields...)
	case *models.NoteInput:
		return v.validateNote(*value, fields...)

	case models.URLInput:
		return v.validateURL(value, fields...)
	case *models.URLInput:
		return v.validateURL(*value, fields...)

	case models.BulkCompleteRequest:
		return v.validateBulkComplete(value)
	case *models.BulkCompleteRequest:
		return v.validateBulkComplete(*value)

	case map[string]any:
		return v.validateUpdates(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateTodo(input models.TodoInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		if err := v.validateValue(f, fieldValue(f, input.Title, input.Description, "")); err != nil {
			return err
		}
	}
	return nil
}

func (v *ResourceValidator) validateNote(input models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		if err := v.validateValue(f, fieldValue(f, input.Title, "", input.Content)); err != nil {
			return err
		}
	}
	return nil
}

func (v *ResourceValidator) validateURL(input models.URLInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOriginalURL}
	}

	for _, f := range fields {
		if f != FieldOriginalURL {
			return ErrUnknownField
		}
		if err := validateURL(input.OriginalURL); err != nil {
			return err
		}
	}
	return nil
}

func (v *ResourceValidator) validateBulkComplete(req models.BulkCompleteRequest) error {
	if len(req.IDs) == 0 {
		return ErrEmptyIDs
	}
	if len(req.IDs) > maxBulkIDs {
		return fmt.Errorf("%w: at most %d allowed", ErrTooManyIDs, maxBulkIDs)
	}
	for i, id := range req.IDs {
		if id <= 0 {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidID)
		}
	}
	return nil
}

func (v *ResourceValidator) validateUpdates(updates map[string]any) error {
	if len(updates) == 0 {
		return ErrNoFieldsToUpdate
	}

	for field, value := range updates {
		switch field {
		case FieldTitle, FieldDescription, FieldContent, FieldOriginalURL:
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %s must be a string", ErrInvalidFieldType, field)
			}
			if err := v.validateValue(field, s); err != nil {
				return err
			}
		case FieldCompleted, FieldIsPublic:
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("%w: %s must be a boolean", ErrInvalidFieldType, field)
			}
		}
	}
	return nil
}

func (v *ResourceValidator) validateValue(field, value string) error {
	switch field {
	case FieldTitle:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyTitle
		}
		if utf8.RuneCountInString(value) > maxTitleLength {
			return ErrTitleTooLong
		}
	case FieldDescription:
		if utf8.RuneCountInString(value) > maxDescriptionLength {
			return ErrDescriptionTooLong
		}
	case FieldContent:
		if utf8.RuneCountInString(value) > maxContentLength {
			return ErrContentTooLong
		}
	case FieldOriginalURL:
		return validateURL(value)
	default:
		return ErrUnknownField
	}
	return nil
}

func fieldValue(field, title, description, content string) string {
	switch field {
	case FieldTitle:
		return title
	case FieldDescription:
		return description
	case FieldContent:
		return content
	}
	return ""
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(raw string) error {
	if raw == "" || len(raw) > maxURLLength {
		return ErrInvalidURL
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
