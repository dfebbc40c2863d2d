package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/models"
)

// ownedRepository is the SQL implementation of [OwnedRepository] for any
// resource type T whose pointer exposes the common [models.Resource] header.
//
// Every read applies the visibility rule "public OR owner = caller" (only
// "public" for guests) unless IncludePrivate is set; every mutation requires
// the caller to own the row. Ownership always wins over visibility.
type ownedRepository[T any, PT interface {
	*T
	models.Owned
}] struct {
	db     *DB
	schema Schema[T]
	fields map[string]Field
	logger *logger.Logger
}

// NewOwnedRepository constructs an [OwnedRepository] for the table described
// by schema.
func NewOwnedRepository[T any, PT interface {
	*T
	models.Owned
}](db *DB, schema Schema[T], logger *logger.Logger) OwnedRepository[T] {
	logger.Debug().Str("table", schema.Table).Msg("creating owned repository")
	return &ownedRepository[T, PT]{
		db:     db,
		schema: schema,
		fields: schema.fields(),
		logger: logger,
	}
}

// Create persists item owned by ownerID (nil for anonymous resources) and
// returns the stored row presented for its creator.
func (r *ownedRepository[T, PT]) Create(ctx context.Context, item T, ownerID *int64) (T, error) {
	log := logger.FromContext(ctx)

	base := PT(&item).Base()
	now := time.Now().UTC()
	base.OwnerID = ownerID
	base.CreatedAt, base.UpdatedAt = now, now

	columns := []string{r.schema.OwnerColumn, r.schema.VisibilityColumn, "created_at", "updated_at"}
	values := []any{base.OwnerID, base.IsPublic, base.CreatedAt, base.UpdatedAt}
	for _, c := range r.schema.Columns {
		columns = append(columns, c.Name)
		values = append(values, c.Value(&item))
	}

	query, args, err := r.db.builder.
		Insert(r.schema.Table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return item, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err = r.db.QueryRowContext(queryCtx, query, args...).Scan(&base.ID); err != nil {
		if isUniqueViolation(err) {
			return item, ErrConflict
		}
		log.Err(err).Str("func", "*ownedRepository.Create").Str("table", r.schema.Table).Msg("error inserting resource")
		return item, r.db.classify(err)
	}

	creator := models.Guest
	if ownerID != nil {
		creator = *ownerID
	}
	base.PresentFor(creator)

	return item, nil
}

// Find lists the resources visible to opts.CallerID that match opts.Filter.
func (r *ownedRepository[T, PT]) Find(ctx context.Context, opts FindOptions) ([]T, error) {
	where, err := r.where(opts)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, where, opts)
}

// FindByID loads one resource. A missing id is [ErrNotFound]; a private
// resource of somebody else, or any foreign resource when
// RequireOwnership is set, is [ErrPermissionDenied].
func (r *ownedRepository[T, PT]) FindByID(ctx context.Context, id int64, opts AccessOptions) (T, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, opts)
}

// FindOneBy is FindByID keyed on any filterable field, e.g. a short code.
func (r *ownedRepository[T, PT]) FindOneBy(ctx context.Context, field string, value any, opts AccessOptions) (T, error) {
	var zero T

	column, v, err := r.filterValue(field, value)
	if err != nil {
		return zero, err
	}

	return r.findOne(ctx, sq.Eq{column: v}, opts)
}

// Update applies the allow-listed fields of updates to a resource owned by
// callerID and returns the stored row.
func (r *ownedRepository[T, PT]) Update(ctx context.Context, id int64, updates map[string]any, callerID int64) (T, error) {
	log := logger.FromContext(ctx)

	current, err := r.ownedBy(ctx, id, callerID)
	if err != nil {
		return current, err
	}

	set, err := r.setClause(updates)
	if err != nil {
		return current, err
	}
	if len(set) == 0 {
		PT(&current).Base().PresentFor(callerID)
		return current, nil
	}
	set["updated_at"] = time.Now().UTC()

	query, args, err := r.db.builder.
		Update(r.schema.Table).
		SetMap(set).
		Where(sq.Eq{"id": id, r.schema.OwnerColumn: callerID}).
		ToSql()
	if err != nil {
		return current, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		if isUniqueViolation(err) {
			return current, ErrConflict
		}
		log.Err(err).Str("func", "*ownedRepository.Update").Str("table", r.schema.Table).Int64("id", id).Msg("error updating resource")
		return current, err
	}

	return r.FindByID(ctx, id, AccessOptions{CallerID: callerID, RequireOwnership: true})
}

// Delete physically removes a resource owned by callerID.
func (r *ownedRepository[T, PT]) Delete(ctx context.Context, id int64, callerID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.ownedBy(ctx, id, callerID); err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Delete(r.schema.Table).
		Where(sq.Eq{"id": id, r.schema.OwnerColumn: callerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*ownedRepository.Delete").Str("table", r.schema.Table).Int64("id", id).Msg("error deleting resource")
		return err
	}
	if affected == 0 {
		// deleted concurrently
		return ErrNotFound
	}

	return nil
}

// Count returns the number of resources Find would return without limits.
func (r *ownedRepository[T, PT]) Count(ctx context.Context, opts FindOptions) (int64, error) {
	where, err := r.where(opts)
	if err != nil {
		return 0, err
	}

	return r.count(ctx, where)
}

// Paginate returns one page of Find together with the total count.
func (r *ownedRepository[T, PT]) Paginate(ctx context.Context, opts PageOptions) (models.Page[T], error) {
	where, err := r.where(opts.FindOptions)
	if err != nil {
		return models.Page[T]{}, err
	}

	return r.page(ctx, where, opts)
}

// Search is Paginate restricted to rows whose searchable fields contain
// term, case-insensitively. An empty term matches everything.
func (r *ownedRepository[T, PT]) Search(ctx context.Context, term string, opts PageOptions) (models.Page[T], error) {
	where, err := r.where(opts.FindOptions)
	if err != nil {
		return models.Page[T]{}, err
	}

	term = strings.TrimSpace(term)
	if term != "" {
		if len(r.schema.Searchable) == 0 {
			return models.Page[T]{}, fmt.Errorf("%w: %s is not searchable", ErrInvalidField, r.schema.Table)
		}

		matches := make(sq.Or, 0, len(r.schema.Searchable))
		for _, field := range r.schema.Searchable {
			matches = append(matches, r.db.contains(r.fields[field].Column, term))
		}
		where = append(where, matches)
	}

	return r.page(ctx, where, opts)
}

// BulkUpdate applies updates to every listed resource owned by callerID and
// returns how many rows changed. Ids owned by somebody else are skipped.
func (r *ownedRepository[T, PT]) BulkUpdate(ctx context.Context, ids []int64, updates map[string]any, callerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if callerID == models.Guest {
		return 0, ErrAuthenticationRequired
	}
	if len(ids) == 0 {
		return 0, nil
	}

	set, err := r.setClause(updates)
	if err != nil {
		return 0, err
	}
	if len(set) == 0 {
		return 0, nil
	}
	set["updated_at"] = time.Now().UTC()

	query, args, err := r.db.builder.
		Update(r.schema.Table).
		SetMap(set).
		Where(sq.Eq{"id": ids, r.schema.OwnerColumn: callerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*ownedRepository.BulkUpdate").Str("table", r.schema.Table).Msg("error updating resources")
		return 0, err
	}

	return affected, nil
}

// Aggregate counts the visible resources grouped by field.
func (r *ownedRepository[T, PT]) Aggregate(ctx context.Context, field string, opts FindOptions) ([]models.GroupCount, error) {
	log := logger.FromContext(ctx)

	if !slices.Contains(r.schema.Groupable, field) {
		return nil, fmt.Errorf("%w: cannot group by %q", ErrInvalidField, field)
	}
	f := r.fields[field]

	where, err := r.where(opts)
	if err != nil {
		return nil, err
	}

	query, args, err := r.db.builder.
		Select(f.Column, "COUNT(*)").
		From(r.schema.Table).
		Where(where).
		GroupBy(f.Column).
		OrderBy(f.Column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(queryCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ownedRepository.Aggregate").Str("table", r.schema.Table).Msg("error aggregating resources")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	groups := make([]models.GroupCount, 0, 4)
	for rows.Next() {
		var value any
		var count int64
		if err = rows.Scan(&value, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		groups = append(groups, models.GroupCount{Value: present(f.Kind, value), Count: count})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return groups, nil
}

// Increment adds delta to a counter field of a resource. It is a system
// operation: callers are expected to have checked visibility beforehand.
func (r *ownedRepository[T, PT]) Increment(ctx context.Context, id int64, field string, delta int64) error {
	if !slices.Contains(r.schema.Counters, field) {
		return fmt.Errorf("%w: %q is not a counter", ErrInvalidField, field)
	}
	column := r.fields[field].Column

	query, args, err := r.db.builder.
		Update(r.schema.Table).
		Set(column, sq.Expr(column+" + ?", delta)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// visibility returns the access-control predicate for callerID.
func (r *ownedRepository[T, PT]) visibility(callerID int64) sq.Sqlizer {
	public := sq.Eq{r.schema.VisibilityColumn: true}
	if callerID == models.Guest {
		return public
	}

	return sq.Or{public, sq.Eq{r.schema.OwnerColumn: callerID}}
}

// where combines the visibility predicate with the equality filters of opts.
func (r *ownedRepository[T, PT]) where(opts FindOptions) (sq.And, error) {
	where := make(sq.And, 0, len(opts.Filter)+1)
	if !opts.IncludePrivate {
		where = append(where, r.visibility(opts.CallerID))
	}

	for field, value := range opts.Filter {
		column, v, err := r.filterValue(field, value)
		if err != nil {
			return nil, err
		}
		where = append(where, sq.Eq{column: v})
	}

	return where, nil
}

func (r *ownedRepository[T, PT]) filterValue(field string, value any) (string, any, error) {
	if !slices.Contains(r.schema.Filterable, field) {
		return "", nil, fmt.Errorf("%w: cannot filter by %q", ErrInvalidField, field)
	}

	f := r.fields[field]
	v, err := coerce(f.Kind, value)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrInvalidField, field, err)
	}

	return f.Column, v, nil
}

// orderBy translates "field" / "-field" into ORDER BY clauses with a
// stable id tie-break.
func (r *ownedRepository[T, PT]) orderBy(sort string) ([]string, error) {
	if sort == "" {
		sort = r.schema.DefaultSort
	}
	if sort == "" {
		return []string{"id ASC"}, nil
	}

	direction := "ASC"
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		sort = sort[1:]
	}

	if !slices.Contains(r.schema.Sortable, sort) {
		return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidField, sort)
	}

	column := r.fields[sort].Column
	if column == "id" {
		return []string{"id " + direction}, nil
	}

	return []string{column + " " + direction, "id " + direction}, nil
}

// setClause keeps the allow-listed fields of updates and coerces their
// values. Unknown or immutable fields are ignored.
func (r *ownedRepository[T, PT]) setClause(updates map[string]any) (map[string]any, error) {
	set := make(map[string]any, len(updates))
	for field, value := range updates {
		if field != fieldIsPublic && !slices.Contains(r.schema.Mutable, field) {
			continue
		}

		f, ok := r.fields[field]
		if !ok {
			continue
		}

		v, err := coerce(f.Kind, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidField, field, err)
		}
		set[f.Column] = v
	}

	return set, nil
}

// ownedBy loads id and checks that callerID may mutate it.
func (r *ownedRepository[T, PT]) ownedBy(ctx context.Context, id int64, callerID int64) (T, error) {
	var zero T

	if callerID == models.Guest {
		return zero, ErrAuthenticationRequired
	}

	current, err := r.load(ctx, sq.Eq{"id": id})
	if err != nil {
		return zero, err
	}

	if !PT(&current).Base().IsOwnedBy(callerID) {
		return zero, ErrPermissionDenied
	}

	return current, nil
}

func (r *ownedRepository[T, PT]) findOne(ctx context.Context, where sq.Eq, opts AccessOptions) (T, error) {
	var zero T

	item, err := r.load(ctx, where)
	if err != nil {
		return zero, err
	}

	base := PT(&item).Base()
	if opts.RequireOwnership && !base.IsOwnedBy(opts.CallerID) {
		return zero, ErrPermissionDenied
	}
	if !base.VisibleTo(opts.CallerID) {
		return zero, ErrPermissionDenied
	}

	base.PresentFor(opts.CallerID)
	return item, nil
}

// load reads one row without any access check.
func (r *ownedRepository[T, PT]) load(ctx context.Context, where sq.Eq) (T, error) {
	log := logger.FromContext(ctx)

	var item T

	query, args, err := r.db.builder.
		Select(r.schema.selectColumns()...).
		From(r.schema.Table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return item, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	err = r.db.QueryRowContext(queryCtx, query, args...).Scan(r.scanDest(&item)...)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*ownedRepository.load").Str("table", r.schema.Table).Msg("resource not found")
		return item, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*ownedRepository.load").Str("table", r.schema.Table).Msg("error loading resource")
		return item, r.db.classify(err)
	}

	return item, nil
}

func (r *ownedRepository[T, PT]) list(ctx context.Context, where sq.And, opts FindOptions) ([]T, error) {
	log := logger.FromContext(ctx)

	order, err := r.orderBy(opts.Sort)
	if err != nil {
		return nil, err
	}

	builder := r.db.builder.
		Select(r.schema.selectColumns()...).
		From(r.schema.Table).
		Where(where).
		OrderBy(order...)
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(queryCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ownedRepository.list").Str("table", r.schema.Table).Msg("error listing resources")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	items := make([]T, 0, max(opts.Limit, 0))
	for rows.Next() {
		var item T
		if err = rows.Scan(r.scanDest(&item)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		PT(&item).Base().PresentFor(opts.CallerID)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return items, nil
}

func (r *ownedRepository[T, PT]) count(ctx context.Context, where sq.And) (int64, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(r.schema.Table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var total int64
	if err = r.db.QueryRowContext(queryCtx, query, args...).Scan(&total); err != nil {
		return 0, r.db.classify(err)
	}

	return total, nil
}

func (r *ownedRepository[T, PT]) page(ctx context.Context, where sq.And, opts PageOptions) (models.Page[T], error) {
	page := max(opts.Page, 1)
	size := r.schema.pageSize(opts.PageSize)
	if size > 0 && page > math.MaxInt/size {
		return models.Page[T]{}, fmt.Errorf("%w: page %d of size %d", ErrPageOutOfRange, page, size)
	}

	total, err := r.count(ctx, where)
	if err != nil {
		return models.Page[T]{}, err
	}

	find := opts.FindOptions
	find.Limit = size
	find.Offset = (page - 1) * size

	items, err := r.list(ctx, where, find)
	if err != nil {
		return models.Page[T]{}, err
	}

	return models.NewPage(items, total, page, size), nil
}

func (r *ownedRepository[T, PT]) exec(ctx context.Context, query string, args []any) (int64, error) {
	queryCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(queryCtx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, err
		}
		return 0, r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.classify(err)
	}

	return affected, nil
}

func (r *ownedRepository[T, PT]) scanDest(item *T) []any {
	base := PT(item).Base()
	dest := []any{&base.ID, &base.OwnerID, &base.IsPublic, &base.CreatedAt, &base.UpdatedAt}
	for _, c := range r.schema.Columns {
		dest = append(dest, c.Ptr(item))
	}
	return dest
}
