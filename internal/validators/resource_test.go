package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-api-hub/models"
	"github.com/stretchr/testify/assert"
)

func TestResourceValidator_Todo(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TodoInput{Title: "buy milk"}))
	assert.ErrorIs(t, v.Validate(ctx, models.TodoInput{Title: " "}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, &models.TodoInput{Title: strings.Repeat("t", 201)}), ErrTitleTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.TodoInput{Title: "x", Description: strings.Repeat("d", 2001)}), ErrDescriptionTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.TodoInput{Title: "x"}, "priority"), ErrUnknownField)
}

func TestResourceValidator_Note(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NoteInput{Title: "Groceries", Content: "# milk"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NoteInput{Content: "body"}), ErrEmptyTitle)
}

func TestResourceValidator_URL(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.com/a?b=c", true},
		{"http://localhost:8080", true},
		{"", false},
		{"example.com", false},
		{"ftp://example.com/file", false},
		{"https://", false},
		{"javascript:alert(1)", false},
		{"https://example.com/" + strings.Repeat("a", 2048), false},
	}

	for _, tt := range tests {
		err := v.Validate(ctx, models.URLInput{OriginalURL: tt.url})
		if tt.valid {
			assert.NoError(t, err, tt.url)
		} else {
			assert.ErrorIs(t, err, ErrInvalidURL, tt.url)
		}
	}
}

func TestResourceValidator_BulkComplete(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BulkCompleteRequest{IDs: []int64{1, 2}}))
	assert.ErrorIs(t, v.Validate(ctx, models.BulkCompleteRequest{}), ErrEmptyIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.BulkCompleteRequest{IDs: []int64{1, 0}}), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, models.BulkCompleteRequest{IDs: make([]int64, 101)}), ErrTooManyIDs)
}

func TestResourceValidator_Updates(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, map[string]any{"title": "new", "completed": true, "ownerId": 5}))
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{"title": ""}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{"title": 5}), ErrInvalidFieldType)
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{"isPublic": "yes"}), ErrInvalidFieldType)
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{"originalUrl": "nope"}), ErrInvalidURL)
}

func TestResourceValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewResourceValidator().Validate(context.Background(), "todo"), ErrUnsupportedType)
}
