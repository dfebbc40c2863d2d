package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-api-hub/models"
)

// TokenService is the token lifecycle manager: it issues, validates,
// rotates and revokes bearer tokens. A token moves only from active to
// revoked, never back.
type TokenService interface {
	Issue(ctx context.Context, user models.User, description string) (models.IssuedToken, error)
	Validate(ctx context.Context, token string) (models.Caller, error)
	Rotate(ctx context.Context, oldToken string, revokeOld bool, description string) (models.IssuedToken, models.User, error)
	Revoke(ctx context.Context, caller models.Caller, token string) error
	RevokeAll(ctx context.Context, email string) (int64, error)
	ListActive(ctx context.Context, email string) ([]models.TokenSummary, error)
}

// AuthService manages accounts and hands out tokens on signup and login.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, models.IssuedToken, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.IssuedToken, error)
	Profile(ctx context.Context, caller models.Caller) (models.User, error)
	UpdateProfile(ctx context.Context, caller models.Caller, req models.ProfileUpdateRequest) (models.User, error)
}

type TodoService interface {
	List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Todo], error)
	Stats(ctx context.Context, callerID int64) ([]models.GroupCount, error)
	Get(ctx context.Context, callerID, id int64) (models.Todo, error)
	Create(ctx context.Context, callerID int64, input models.TodoInput) (models.Todo, error)
	Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Todo, error)
	Delete(ctx context.Context, callerID, id int64) error
	BulkComplete(ctx context.Context, callerID int64, req models.BulkCompleteRequest) (int64, error)
}

type NoteService interface {
	List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Note], error)
	Get(ctx context.Context, callerID, id int64) (models.Note, error)
	RenderHTML(ctx context.Context, callerID, id int64) (string, error)
	Create(ctx context.Context, callerID int64, input models.NoteInput) (models.Note, error)
	Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Note, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type URLService interface {
	// Shorten creates a short URL. Guests may shorten too; their URLs have
	// no owner and are always public.
	Shorten(ctx context.Context, callerID int64, input models.URLInput) (models.URL, error)
	List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.URL], error)
	Get(ctx context.Context, callerID, id int64) (models.URL, error)
	Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.URL, error)
	Delete(ctx context.Context, callerID, id int64) error
	// Resolve looks a short code up for redirection and counts the click.
	Resolve(ctx context.Context, callerID int64, code string) (models.URL, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// LastUsedRecorder queues last-used stamps off the request path.
type LastUsedRecorder interface {
	Record(token string, at time.Time) bool
}

// TodoServiceWrapper, NoteServiceWrapper and URLServiceWrapper define
// middleware composition for the resource services. Implementations wrap
// an existing service to add behavior such as validation.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

type URLServiceWrapper interface {
	Wrap(URLService) URLService
}
