package store

import (
	"fmt"
	"strconv"
	"time"
)

// FieldKind tells the generic repository how to coerce caller-supplied
// values for a field and how to present aggregated values.
type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
	KindInt
	KindTime
)

// Field maps a public (JSON) field name onto a table column.
type Field struct {
	Column string
	Kind   FieldKind
}

// Column is one payload column of a resource type T: how to read it from a
// value for inserts and where to scan it into.
type Column[T any] struct {
	Field string
	Name  string
	Kind  FieldKind
	Value func(*T) any
	Ptr   func(*T) any
}

// Schema parameterizes [OwnedRepository] over a resource type. Everything
// the repository needs to know about a table lives here; the repository
// itself knows nothing about todos, notes or URLs.
type Schema[T any] struct {
	Table            string
	OwnerColumn      string
	VisibilityColumn string

	// Columns are the payload columns, in select order after the header.
	Columns []Column[T]

	// Sortable, Filterable and Groupable list public field names.
	Sortable   []string
	Filterable []string
	Groupable  []string

	// Searchable lists payload field names matched by Search.
	Searchable []string

	// Mutable is the allow-list of fields Update and BulkUpdate may change.
	// The visibility field is always mutable by the owner; the owner field
	// never is.
	Mutable []string

	// Counters lists integer fields that may be bumped by Increment.
	Counters []string

	// DefaultSort is a field name, prefixed with "-" for descending order.
	DefaultSort string

	DefaultPageSize int
	MaxPageSize     int
}

const (
	fieldID        = "id"
	fieldIsPublic  = "isPublic"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// fields returns every public field of the schema, header fields included.
func (s *Schema[T]) fields() map[string]Field {
	fields := map[string]Field{
		fieldID:        {Column: "id", Kind: KindInt},
		fieldIsPublic:  {Column: s.VisibilityColumn, Kind: KindBool},
		fieldCreatedAt: {Column: "created_at", Kind: KindTime},
		fieldUpdatedAt: {Column: "updated_at", Kind: KindTime},
	}
	for _, c := range s.Columns {
		fields[c.Field] = Field{Column: c.Name, Kind: c.Kind}
	}
	return fields
}

func (s *Schema[T]) selectColumns() []string {
	columns := []string{"id", s.OwnerColumn, s.VisibilityColumn, "created_at", "updated_at"}
	for _, c := range s.Columns {
		columns = append(columns, c.Name)
	}
	return columns
}

// pageSize clamps a requested page size into [1, MaxPageSize], falling back
// to DefaultPageSize for non-positive requests.
func (s *Schema[T]) pageSize(requested int) int {
	if requested <= 0 {
		return s.DefaultPageSize
	}
	if s.MaxPageSize > 0 && requested > s.MaxPageSize {
		return s.MaxPageSize
	}
	return requested
}

// coerce converts a caller-supplied value (typically decoded from JSON or a
// query string) into the Go type stored in a column of kind.
func coerce(kind FieldKind, value any) (any, error) {
	switch kind {
	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			return strconv.ParseBool(v)
		}
	case KindInt:
		switch v := value.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("%v is not an integer", v)
			}
			return int64(v), nil
		case string:
			return strconv.ParseInt(v, 10, 64)
		}
	case KindString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case KindTime:
		switch v := value.(type) {
		case time.Time:
			return v.UTC(), nil
		case string:
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return nil, err
			}
			return t.UTC(), nil
		}
	}

	return nil, fmt.Errorf("unexpected value %v (%T)", value, value)
}

// present formats an aggregated column value for a [models.GroupCount].
// SQLite reports booleans as integers, so bool fields are normalized.
func present(kind FieldKind, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case int64:
		if kind == KindBool {
			return strconv.FormatBool(v != 0)
		}
		return strconv.FormatInt(v, 10)
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
