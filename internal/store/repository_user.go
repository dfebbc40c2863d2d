package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/models"
)

var userColumns = []string{"user_id", "email", "name", "password_hash", "created_at", "updated_at"}

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - timeouts and connectivity failures → [ErrUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("email", "name", "password_hash", "created_at", "updated_at").
		Values(user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email. The comparison
// is exact (case-sensitive).
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email}, "*userRepository.FindUserByEmail")
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID}, "*userRepository.FindUserByID")
}

// UpdateUser replaces the name and password hash of an existing user and
// returns the stored record.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = time.Now().UTC()

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set("name", user.Name).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	execCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("error updating user")
		return models.User{}, r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, r.db.classify(err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.FindUserByID(ctx, user.UserID)
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("user not found")
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}
