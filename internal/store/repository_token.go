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

var tokenColumns = []string{
	"id", "token", "user_id", "email", "is_active", "description",
	"created_at", "last_used_at", "revoked_at", "rotated_from", "rotated_to",
}

// tokenRepository is the SQL implementation of [TokenRepository], the token
// ledger. Rows are never deleted; the only transitions are the last-used
// stamp and the one-way active → revoked switch.
type tokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenRepository] backed by db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateToken inserts rec as a new active ledger row and returns it with the
// assigned id.
func (r *tokenRepository) CreateToken(ctx context.Context, rec models.TokenRecord) (models.TokenRecord, error) {
	log := logger.FromContext(ctx)

	rec.IsActive = true
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert(rec.TableName()).
		Columns("token", "user_id", "email", "is_active", "description", "created_at", "rotated_from").
		Values(rec.Token, rec.UserID, rec.Email, rec.IsActive, rec.Description, rec.CreatedAt, rec.RotatedFrom).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		if isUniqueViolation(err) {
			return models.TokenRecord{}, ErrTokenAlreadyExists
		}
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Int64("user_id", rec.UserID).Msg("error inserting token")
		return models.TokenRecord{}, r.db.classify(err)
	}

	return rec, nil
}

// FindToken returns the ledger row of token in any state.
func (r *tokenRepository) FindToken(ctx context.Context, token string) (models.TokenRecord, error) {
	return r.findToken(ctx, sq.Eq{"token": token}, "*tokenRepository.FindToken")
}

// FindActiveToken returns the ledger row of token only while it is active.
func (r *tokenRepository) FindActiveToken(ctx context.Context, token string) (models.TokenRecord, error) {
	return r.findToken(ctx, sq.Eq{"token": token, "is_active": true}, "*tokenRepository.FindActiveToken")
}

// TouchToken stamps the last-used time of an active token. Revoked tokens
// are left untouched.
func (r *tokenRepository) TouchToken(ctx context.Context, token string, at time.Time) error {
	query, args, err := r.db.builder.
		Update(models.TokenRecord{}.TableName()).
		Set("last_used_at", at.UTC()).
		Where(sq.Eq{"token": token, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.db.classify(err)
	}

	return nil
}

// DiscardToken revokes token whatever its state and clears rotated_from,
// leaving the winner of a rotation as the only successor of its predecessor.
func (r *tokenRepository) DiscardToken(ctx context.Context, token string, at time.Time) error {
	query, args, err := r.db.builder.
		Update(models.TokenRecord{}.TableName()).
		Set("is_active", false).
		Set("revoked_at", at.UTC()).
		Set("rotated_from", nil).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.DiscardToken").Msg("error discarding token")
		return r.db.classify(err)
	}

	return nil
}

// RevokeToken switches token from active to revoked, recording the
// revocation time and, for rotations, the successor token. The update is
// conditional on the row still being active, so of several concurrent
// callers exactly one observes revoked == true.
func (r *tokenRepository) RevokeToken(ctx context.Context, token string, at time.Time, rotatedTo *string) (bool, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder.
		Update(models.TokenRecord{}.TableName()).
		Set("is_active", false).
		Set("revoked_at", at.UTC()).
		Where(sq.Eq{"token": token, "is_active": true})
	if rotatedTo != nil {
		update = update.Set("rotated_to", *rotatedTo)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.RevokeToken").Msg("error revoking token")
		return false, r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.db.classify(err)
	}

	return affected == 1, nil
}

// RevokeAllTokens revokes every active token of email and returns how many
// rows actually transitioned.
func (r *tokenRepository) RevokeAllTokens(ctx context.Context, email string, at time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.TokenRecord{}.TableName()).
		Set("is_active", false).
		Set("revoked_at", at.UTC()).
		Where(sq.Eq{"email": email, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.RevokeAllTokens").Msg("error revoking tokens")
		return 0, r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.classify(err)
	}

	return affected, nil
}

// ListActiveTokens returns the active tokens of email, newest first.
func (r *tokenRepository) ListActiveTokens(ctx context.Context, email string) ([]models.TokenRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(tokenColumns...).
		From(models.TokenRecord{}.TableName()).
		Where(sq.Eq{"email": email, "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.ListActiveTokens").Msg("error listing tokens")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	records := make([]models.TokenRecord, 0, 8)
	for rows.Next() {
		rec, scanErr := scanToken(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return records, nil
}

func (r *tokenRepository) findToken(ctx context.Context, where sq.Eq, funcName string) (models.TokenRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(tokenColumns...).
		From(models.TokenRecord{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rec, err := scanToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("token not found")
		return models.TokenRecord{}, ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding token")
		return models.TokenRecord{}, r.db.classify(err)
	}

	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner) (models.TokenRecord, error) {
	var rec models.TokenRecord
	err := row.Scan(
		&rec.ID,
		&rec.Token,
		&rec.UserID,
		&rec.Email,
		&rec.IsActive,
		&rec.Description,
		&rec.CreatedAt,
		&rec.LastUsedAt,
		&rec.RevokedAt,
		&rec.RotatedFrom,
		&rec.RotatedTo,
	)
	return rec, err
}
