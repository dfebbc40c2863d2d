package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-api-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// TokenRepository is the token ledger. Rows are never deleted; a token only
// ever moves from active to revoked.
type TokenRepository interface {
	CreateToken(ctx context.Context, rec models.TokenRecord) (models.TokenRecord, error)
	FindToken(ctx context.Context, token string) (models.TokenRecord, error)
	FindActiveToken(ctx context.Context, token string) (models.TokenRecord, error)
	TouchToken(ctx context.Context, token string, at time.Time) error
	// RevokeToken reports whether this call transitioned the token.
	RevokeToken(ctx context.Context, token string, at time.Time, rotatedTo *string) (bool, error)
	RevokeAllTokens(ctx context.Context, email string, at time.Time) (int64, error)
	// DiscardToken revokes a token minted by a rotation that did not win and
	// clears its rotated_from pointer.
	DiscardToken(ctx context.Context, token string, at time.Time) error
	ListActiveTokens(ctx context.Context, email string) ([]models.TokenRecord, error)
}

// FindOptions narrows a listing. Filter keys are public field names.
type FindOptions struct {
	CallerID int64
	// IncludePrivate disables the visibility filter. System use only.
	IncludePrivate bool
	Filter         map[string]any
	Sort           string
	Limit          int
	Offset         int
}

// PageOptions is FindOptions addressed by page number instead of offset.
type PageOptions struct {
	FindOptions
	Page     int
	PageSize int
}

// AccessOptions controls single-row reads.
type AccessOptions struct {
	CallerID         int64
	RequireOwnership bool
}

// OwnedRepository is the ownership-scoped repository shared by every
// resource type.
type OwnedRepository[T any] interface {
	Create(ctx context.Context, item T, ownerID *int64) (T, error)
	Find(ctx context.Context, opts FindOptions) ([]T, error)
	FindByID(ctx context.Context, id int64, opts AccessOptions) (T, error)
	FindOneBy(ctx context.Context, field string, value any, opts AccessOptions) (T, error)
	Update(ctx context.Context, id int64, updates map[string]any, callerID int64) (T, error)
	Delete(ctx context.Context, id int64, callerID int64) error
	Count(ctx context.Context, opts FindOptions) (int64, error)
	Paginate(ctx context.Context, opts PageOptions) (models.Page[T], error)
	Search(ctx context.Context, term string, opts PageOptions) (models.Page[T], error)
	BulkUpdate(ctx context.Context, ids []int64, updates map[string]any, callerID int64) (int64, error)
	Aggregate(ctx context.Context, field string, opts FindOptions) ([]models.GroupCount, error)
	Increment(ctx context.Context, id int64, field string, delta int64) error
}

// TodoRepository, NoteRepository and URLRepository are the concrete
// instantiations used by the services.
type (
	TodoRepository = OwnedRepository[models.Todo]
	NoteRepository = OwnedRepository[models.Note]
	URLRepository  = OwnedRepository[models.URL]
)
