package service

import (
	"context"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/models"
)

const fieldCompleted = "completed"

type todoService struct {
	todos  store.TodoRepository
	logger *logger.Logger
}

func NewTodoService(todos store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todos:  todos,
		logger: logger,
	}
}

func (s *todoService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Todo], error) {
	var (
		page models.Page[models.Todo]
		err  error
	)
	if query.Search != "" {
		page, err = s.todos.Search(ctx, query.Search, pageOptions(callerID, query))
	} else {
		page, err = s.todos.Paginate(ctx, pageOptions(callerID, query))
	}
	if err != nil {
		return models.Page[models.Todo]{}, fromStore(err)
	}

	return page, nil
}

// Stats counts the visible todos grouped by completion.
func (s *todoService) Stats(ctx context.Context, callerID int64) ([]models.GroupCount, error) {
	stats, err := s.todos.Aggregate(ctx, fieldCompleted, store.FindOptions{CallerID: callerID})
	if err != nil {
		return nil, fromStore(err)
	}

	return stats, nil
}

func (s *todoService) Get(ctx context.Context, callerID, id int64) (models.Todo, error) {
	todo, err := s.todos.FindByID(ctx, id, store.AccessOptions{CallerID: callerID})
	if err != nil {
		return models.Todo{}, fromStore(err)
	}

	return todo, nil
}

// Create stores a new todo owned by the caller. Todos are private unless
// the input says otherwise.
func (s *todoService) Create(ctx context.Context, callerID int64, input models.TodoInput) (models.Todo, error) {
	if callerID == models.Guest {
		return models.Todo{}, ErrAuthenticationRequired
	}

	todo := models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}
	todo.IsPublic = visibility(input.IsPublic, false)

	created, err := s.todos.Create(ctx, todo, &callerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.Create").Msg("todo creation failed")
		return models.Todo{}, fromStore(err)
	}

	return created, nil
}

func (s *todoService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Todo, error) {
	todo, err := s.todos.Update(ctx, id, updates, callerID)
	if err != nil {
		return models.Todo{}, fromStore(err)
	}

	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, callerID, id int64) error {
	return fromStore(s.todos.Delete(ctx, id, callerID))
}

// BulkComplete sets the completion flag of the caller's todos among
// req.IDs. Ids the caller does not own are skipped silently.
func (s *todoService) BulkComplete(ctx context.Context, callerID int64, req models.BulkCompleteRequest) (int64, error) {
	affected, err := s.todos.BulkUpdate(ctx, req.IDs, map[string]any{fieldCompleted: req.Completed}, callerID)
	if err != nil {
		return 0, fromStore(err)
	}

	return affected, nil
}
