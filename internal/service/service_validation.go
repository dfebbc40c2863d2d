package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/validators"
	"github.com/MKhiriev/go-api-hub/models"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// TodoValidationService checks todo input before it reaches the inner
// TodoService. Reads pass through untouched.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *TodoValidationService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Todo], error) {
	return v.inner.List(ctx, callerID, query)
}

func (v *TodoValidationService) Stats(ctx context.Context, callerID int64) ([]models.GroupCount, error) {
	return v.inner.Stats(ctx, callerID)
}

func (v *TodoValidationService) Get(ctx context.Context, callerID, id int64) (models.Todo, error) {
	return v.inner.Get(ctx, callerID, id)
}

func (v *TodoValidationService) Create(ctx context.Context, callerID int64, input models.TodoInput) (models.Todo, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Todo{}, invalid(err)
	}

	return v.inner.Create(ctx, callerID, input)
}

func (v *TodoValidationService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Todo, error) {
	if err := v.validator.Validate(ctx, updates); err != nil {
		return models.Todo{}, invalid(err)
	}

	return v.inner.Update(ctx, callerID, id, updates)
}

func (v *TodoValidationService) Delete(ctx context.Context, callerID, id int64) error {
	return v.inner.Delete(ctx, callerID, id)
}

func (v *TodoValidationService) BulkComplete(ctx context.Context, callerID int64, req models.BulkCompleteRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, invalid(err)
	}

	return v.inner.BulkComplete(ctx, callerID, req)
}

func (v *TodoValidationService) Wrap(wrapper TodoService) TodoService {
	v.inner = wrapper
	return v
}

type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *NoteValidationService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Note], error) {
	return v.inner.List(ctx, callerID, query)
}

func (v *NoteValidationService) Get(ctx context.Context, callerID, id int64) (models.Note, error) {
	return v.inner.Get(ctx, callerID, id)
}

func (v *NoteValidationService) RenderHTML(ctx context.Context, callerID, id int64) (string, error) {
	return v.inner.RenderHTML(ctx, callerID, id)
}

func (v *NoteValidationService) Create(ctx context.Context, callerID int64, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, invalid(err)
	}

	return v.inner.Create(ctx, callerID, input)
}

func (v *NoteValidationService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Note, error) {
	if err := v.validator.Validate(ctx, updates); err != nil {
		return models.Note{}, invalid(err)
	}

	return v.inner.Update(ctx, callerID, id, updates)
}

func (v *NoteValidationService) Delete(ctx context.Context, callerID, id int64) error {
	return v.inner.Delete(ctx, callerID, id)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}

type URLValidationService struct {
	inner     URLService
	validator validators.Validator
}

func NewURLValidationService() URLServiceWrapper {
	return &URLValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *URLValidationService) Shorten(ctx context.Context, callerID int64, input models.URLInput) (models.URL, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.URL{}, invalid(err)
	}

	return v.inner.Shorten(ctx, callerID, input)
}

func (v *URLValidationService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.URL], error) {
	return v.inner.List(ctx, callerID, query)
}

func (v *URLValidationService) Get(ctx context.Context, callerID, id int64) (models.URL, error) {
	return v.inner.Get(ctx, callerID, id)
}

func (v *URLValidationService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.URL, error) {
	if err := v.validator.Validate(ctx, updates); err != nil {
		return models.URL{}, invalid(err)
	}

	return v.inner.Update(ctx, callerID, id, updates)
}

func (v *URLValidationService) Delete(ctx context.Context, callerID, id int64) error {
	return v.inner.Delete(ctx, callerID, id)
}

func (v *URLValidationService) Resolve(ctx context.Context, callerID int64, code string) (models.URL, error) {
	return v.inner.Resolve(ctx, callerID, code)
}

func (v *URLValidationService) Wrap(wrapper URLService) URLService {
	v.inner = wrapper
	return v
}
